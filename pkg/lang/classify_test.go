package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zen-lang/zenls/pkg/schema"
)

func TestStripModifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		wantKey   string
		wantFlags KeyFlags
	}{
		{name: "no modifiers", key: "port", wantKey: "port"},
		{name: "computed prefix", key: "^total", wantKey: "total", wantFlags: FlagComputed},
		{name: "private prefix", key: "~secret", wantKey: "secret", wantFlags: FlagPrivate},
		{name: "required suffix", key: "name!", wantKey: "name", wantFlags: FlagRequired},
		{name: "watched suffix", key: "count*", wantKey: "count", wantFlags: FlagWatched},
		{
			name:      "stacked affixes",
			key:       "^~field!*",
			wantKey:   "field",
			wantFlags: FlagComputed | FlagPrivate | FlagRequired | FlagWatched,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, flags := StripModifiers(tt.key)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantFlags, flags)
		})
	}
}

func TestClassify_Dialects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		indent   int
		atRoot   bool
		ft       schema.FileType
		setup    func(tr *Tracker)
		want     KeyCategory
		opens    bool
		wantKind BlockKind
	}{
		{name: "metadata at root", key: "version", atRoot: true, ft: schema.FileGeneric, want: KeyMetadata},
		{name: "plain root key", key: "server", atRoot: true, ft: schema.FileGeneric, want: KeyRoot},
		{name: "plain nested key", key: "host", indent: 2, ft: schema.FileGeneric, want: KeyNested},
		{name: "spark directive", key: "zMode", atRoot: true, ft: schema.FileSpark, want: KeyDirective},
		{name: "directive needs spark dialect", key: "zMode", atRoot: true, ft: schema.FileGeneric, want: KeyRoot},
		{name: "env var", key: "DATABASE_URL", atRoot: true, ft: schema.FileEnv, want: KeyEnvVar},
		{name: "config key", key: "logLevel", atRoot: true, ft: schema.FileConfig, want: KeyConfig},
		{name: "config key needs config dialect", key: "logLevel", atRoot: true, ft: schema.FileGeneric, want: KeyRoot},
		{
			name: "fields opens schema block", key: "fields", atRoot: true, ft: schema.FileSchema,
			want: KeyRoot, opens: true, wantKind: BlockSchemaFields,
		},
		{
			name: "schema field at first level", key: "username", indent: 2, ft: schema.FileSchema,
			setup: func(tr *Tracker) { tr.Enter(BlockSchemaFields, 0, 0) },
			want:  KeySchemaField, opens: true, wantKind: BlockSchemaField,
		},
		{
			name: "schema option inside field", key: "required", indent: 4, ft: schema.FileSchema,
			setup: func(tr *Tracker) {
				tr.Enter(BlockSchemaFields, 0, 0)
				tr.Enter(BlockSchemaField, 2, 1)
			},
			want: KeySchemaOption,
		},
		{
			name: "bridge opens block in spark", key: "bridge", atRoot: true, ft: schema.FileSpark,
			want: KeyBridge, opens: true, wantKind: BlockBridge,
		},
		{
			name: "key inside bridge", key: "onSubmit", indent: 2, ft: schema.FileSpark,
			setup: func(tr *Tracker) { tr.Enter(BlockBridge, 0, 0) },
			want:  KeyBridge,
		},
		{
			name: "access opens block", key: "access", atRoot: true, ft: schema.FileGeneric,
			want: KeyAccess, opens: true, wantKind: BlockAccess,
		},
		{
			name: "allow inside access", key: "allow", indent: 2, ft: schema.FileGeneric,
			setup: func(tr *Tracker) { tr.Enter(BlockAccess, 0, 0) },
			want:  KeyAccess,
		},
		{
			name: "deep access option", key: "role", indent: 4, ft: schema.FileGeneric,
			setup: func(tr *Tracker) { tr.Enter(BlockAccess, 0, 0) },
			want:  KeyAccessOption,
		},
		{
			name: "routes opens block", key: "routes", atRoot: true, ft: schema.FileGeneric,
			want: KeyNavigation, opens: true, wantKind: BlockRoutes,
		},
		{
			name: "key inside routes", key: "home", indent: 2, ft: schema.FileGeneric,
			setup: func(tr *Tracker) { tr.Enter(BlockRoutes, 0, 0) },
			want:  KeyNavigation,
		},
		{
			name: "ui element", key: "Button", indent: 2, ft: schema.FileUI,
			want: KeyUIElement, opens: true, wantKind: BlockUIElement,
		},
		{name: "ui element needs ui dialect", key: "Button", indent: 2, ft: schema.FileGeneric, want: KeyNested},
		{
			name: "ui property inside element", key: "label", indent: 4, ft: schema.FileUI,
			setup: func(tr *Tracker) { tr.Enter(BlockUIElement, 2, 1) },
			want:  KeyUIProperty,
		},
		{name: "invalid key text", key: "bad key", atRoot: true, ft: schema.FileGeneric, want: KeyUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tr := NewTracker()
			if tt.setup != nil {
				tt.setup(tr)
			}
			got := Classify(tt.key, tt.indent, tt.atRoot, tr, tt.ft)
			assert.Equal(t, tt.want, got.Category)
			assert.Equal(t, tt.opens, got.OpensBlock)
			if tt.opens {
				assert.Equal(t, tt.wantKind, got.Opens)
			}
		})
	}
}

func TestSpecialValues(t *testing.T) {
	t.Parallel()

	values, ok := SpecialValues(schema.FileSpark, "zMode")
	assert.True(t, ok)
	assert.Equal(t, []string{"reactive", "static"}, values)

	_, ok = SpecialValues(schema.FileGeneric, "zMode")
	assert.False(t, ok, "special values are dialect-scoped")

	values, ok = SpecialValues(schema.FileConfig, "logLevel")
	assert.True(t, ok)
	assert.Equal(t, []string{"debug", "info", "warn", "error"}, values)
}

func TestKnownKeys(t *testing.T) {
	t.Parallel()

	keys := KnownKeys(schema.FileSpark)
	assert.Contains(t, keys, "zMode")
	assert.Contains(t, keys, "bridge")
	assert.Contains(t, keys, "name")
	assert.NotContains(t, keys, "logLevel")
}
