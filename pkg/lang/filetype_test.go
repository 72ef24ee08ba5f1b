package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zen-lang/zenls/pkg/schema"
)

func TestDetectFileType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		filename      string
		wantType      schema.FileType
		wantComponent string
	}{
		{
			name:          "spark convention",
			filename:      "Spark.Payment.zen",
			wantType:      schema.FileSpark,
			wantComponent: "Payment",
		},
		{
			name:          "lowercase prefix",
			filename:      "config.Server.zen",
			wantType:      schema.FileConfig,
			wantComponent: "Server",
		},
		{
			name:          "ui convention with directory",
			filename:      "src/views/UI.Dashboard.zen",
			wantType:      schema.FileUI,
			wantComponent: "Dashboard",
		},
		{
			name:          "env convention",
			filename:      "Env.Prod.zen",
			wantType:      schema.FileEnv,
			wantComponent: "Prod",
		},
		{
			name:          "schema convention",
			filename:      "Schema.User.zen",
			wantType:      schema.FileSchema,
			wantComponent: "User",
		},
		{
			name:     "plain name is generic",
			filename: "notes.zen",
			wantType: schema.FileGeneric,
		},
		{
			name:     "unknown prefix is generic",
			filename: "Widget.Button.zen",
			wantType: schema.FileGeneric,
		},
		{
			name:     "four segments is generic",
			filename: "Spark.A.B.zen",
			wantType: schema.FileGeneric,
		},
		{
			name:     "empty component is generic",
			filename: "Spark..zen",
			wantType: schema.FileGeneric,
		},
		{
			name:     "absent filename is generic",
			filename: "",
			wantType: schema.FileGeneric,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ft, component := DetectFileType(tt.filename)
			assert.Equal(t, tt.wantType, ft)
			assert.Equal(t, tt.wantComponent, component)
		})
	}
}
