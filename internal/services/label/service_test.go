package label

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/labelflair/internal/config"
	"github.com/thenoetrevino/labelflair/internal/models"
	"github.com/thenoetrevino/labelflair/internal/palette"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func strPtr(s string) *string { return &s }

// triRegistry has a single three-shade palette so cycling is easy to read
func triRegistry() *palette.Registry {
	return palette.NewRegistry(palette.Entry{Name: "tri", Shades: []string{"#000001", "#000002", "#000003"}})
}

func names(labels []*models.Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Name
	}
	return out
}

func colors(labels []*models.Label) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = l.Color
	}
	return out
}

func bare(names ...string) []config.LabelEntry {
	out := make([]config.LabelEntry, len(names))
	for i, n := range names {
		out[i] = config.BareLabel(n)
	}
	return out
}

// ============================================================================
// NORMALIZE TESTS
// ============================================================================

func TestNormalize_Bare(t *testing.T) {
	n, err := Normalize(config.BareLabel("bug"))
	require.NoError(t, err)

	assert.Equal(t, "bug", n.Name)
	assert.Nil(t, n.Description)
	assert.NotNil(t, n.Aliases)
	assert.Empty(t, n.Aliases)
}

func TestNormalize_Detailed(t *testing.T) {
	n, err := Normalize(config.DetailedLabel{
		Name:        "defect",
		Description: strPtr("Something is broken"),
		Aliases:     []string{"bug", "broken"},
	})
	require.NoError(t, err)

	assert.Equal(t, "defect", n.Name)
	require.NotNil(t, n.Description)
	assert.Equal(t, "Something is broken", *n.Description)
	assert.Equal(t, []string{"bug", "broken"}, n.Aliases)
}

func TestNormalize_DetailedWithoutAliases(t *testing.T) {
	n, err := Normalize(config.DetailedLabel{Name: "feature"})
	require.NoError(t, err)
	assert.NotNil(t, n.Aliases)
	assert.Empty(t, n.Aliases)
}

func TestNormalize_TrimsName(t *testing.T) {
	n, err := Normalize(config.BareLabel("  bug \t"))
	require.NoError(t, err)
	assert.Equal(t, "bug", n.Name)
}

func TestNormalize_EmptyName(t *testing.T) {
	tests := []config.LabelEntry{
		config.BareLabel(""),
		config.BareLabel("   "),
		config.DetailedLabel{Name: "\t"},
	}

	for _, entry := range tests {
		_, err := Normalize(entry)
		assert.ErrorIs(t, err, ErrEmptyLabelName)
	}
}

func TestNormalize_NilEntry(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, config.ErrInvalidLabelEntry)
}

// ============================================================================
// GROUP TESTS
// ============================================================================

func TestResolveGroup_PositionalCycling(t *testing.T) {
	labels, err := ResolveGroup(triRegistry(), 0, config.Group{
		Colors: config.Palette{Name: "tri"},
		Labels: bare("a", "b", "c", "d", "e"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names(labels))
	assert.Equal(t, []string{"#000001", "#000002", "#000003", "#000001", "#000002"}, colors(labels))
}

func TestResolveGroup_FixedColor(t *testing.T) {
	labels, err := ResolveGroup(palette.Default(), 0, config.Group{
		Colors: config.Fixed{Hex: "#4ade80"},
		Labels: bare("one", "two", "three", "four"),
	})
	require.NoError(t, err)
	require.Len(t, labels, 4)

	for _, l := range labels {
		assert.Equal(t, "#4ade80", l.Color)
	}
}

func TestResolveGroup_Prefix(t *testing.T) {
	prefixed, err := ResolveGroup(palette.Default(), 0, config.Group{
		Prefix: "C-",
		Colors: config.Palette{Name: "red"},
		Labels: bare("bug"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C-bug"}, names(prefixed))

	plain, err := ResolveGroup(palette.Default(), 0, config.Group{
		Colors: config.Palette{Name: "red"},
		Labels: bare("bug"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"bug"}, names(plain))
}

func TestResolveGroup_PrefixedPaletteGroup(t *testing.T) {
	labels, err := ResolveGroup(palette.Default(), 0, config.Group{
		Prefix: "C-",
		Colors: config.Palette{Name: "red"},
		Labels: bare("bug", "feature"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"C-bug", "C-feature"}, names(labels))
	assert.Equal(t, []string{"#ef4444", "#f87171"}, colors(labels))
}

func TestResolveGroup_ReorderingChangesColors(t *testing.T) {
	forward, err := ResolveGroup(triRegistry(), 0, config.Group{
		Colors: config.Palette{Name: "tri"},
		Labels: bare("x", "y"),
	})
	require.NoError(t, err)

	reversed, err := ResolveGroup(triRegistry(), 0, config.Group{
		Colors: config.Palette{Name: "tri"},
		Labels: bare("y", "x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "#000001", forward[0].Color)  // x
	assert.Equal(t, "#000002", reversed[1].Color) // x
}

func TestResolveGroup_Sort(t *testing.T) {
	labels, err := ResolveGroup(triRegistry(), 0, config.Group{
		Prefix: "C-",
		Colors: config.Palette{Name: "tri"},
		Labels: bare("feature", "alpha", "bug"),
		Sort:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"C-alpha", "C-bug", "C-feature"}, names(labels))
	assert.Equal(t, []string{"#000001", "#000002", "#000003"}, colors(labels))
}

func TestResolveGroup_MixedForms(t *testing.T) {
	labels, err := ResolveGroup(triRegistry(), 0, config.Group{
		Colors: config.Palette{Name: "tri"},
		Labels: []config.LabelEntry{
			config.BareLabel("a"),
			config.DetailedLabel{Name: "b", Description: strPtr("B")},
		},
	})
	require.NoError(t, err)
	require.Len(t, labels, 2)

	assert.Equal(t, "a", labels[0].Name)
	assert.Nil(t, labels[0].Description)
	assert.Equal(t, "#000001", labels[0].Color)

	assert.Equal(t, "b", labels[1].Name)
	require.NotNil(t, labels[1].Description)
	assert.Equal(t, "B", *labels[1].Description)
	assert.Equal(t, "#000002", labels[1].Color)

	assert.Empty(t, labels[0].Aliases)
	assert.Empty(t, labels[1].Aliases)
}

func TestResolveGroup_AliasRename(t *testing.T) {
	labels, err := ResolveGroup(palette.Default(), 0, config.Group{
		Colors: config.Fixed{Hex: "#ff0000"},
		Labels: []config.LabelEntry{config.DetailedLabel{Name: "defect", Aliases: []string{"bug"}}},
	})
	require.NoError(t, err)
	require.Len(t, labels, 1)

	assert.Equal(t, "defect", labels[0].Name)
	assert.Equal(t, []string{"bug"}, labels[0].Aliases)
}

func TestResolveGroup_EmptyGroup(t *testing.T) {
	// The unknown palette would fail too; the empty check must come first
	_, err := ResolveGroup(palette.Default(), 2, config.Group{
		Prefix: "P-",
		Colors: config.Palette{Name: "nonexistent"},
		Labels: []config.LabelEntry{},
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrEmptyGroup)
	assert.False(t, errors.Is(err, palette.ErrUnknownPalette))

	var groupErr *GroupError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, 2, groupErr.Index)
	assert.Equal(t, "P-", groupErr.Prefix)
	assert.Equal(t, `group 2 (prefix "P-"): group has no labels`, err.Error())
}

func TestResolveGroup_UnknownPalette(t *testing.T) {
	labels, err := ResolveGroup(palette.Default(), 0, config.Group{
		Colors: config.Palette{Name: "nonexistent"},
		Labels: bare("bug"),
	})
	assert.Nil(t, labels)
	require.Error(t, err)

	var unknown *palette.UnknownPaletteError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nonexistent", unknown.Name)
}

func TestResolveGroup_EmptyLabelName(t *testing.T) {
	_, err := ResolveGroup(palette.Default(), 1, config.Group{
		Colors: config.Palette{Name: "red"},
		Labels: bare("bug", "  "),
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrEmptyLabelName)

	var labelErr *LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, 1, labelErr.Index)
}

// ============================================================================
// SERVICE TESTS
// ============================================================================

func TestResolve_FullConfig(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Labels: []config.StandaloneLabel{
			{Name: "good-first-issue", Color: "#4ade80"},
		},
		Groups: []config.Group{
			{Prefix: "C-", Colors: config.Palette{Name: "red"}, Labels: bare("bug", "feature")},
			{Prefix: "P-", Colors: config.Palette{Name: "blue"}, Labels: bare("merge", "block")},
		},
	}

	svc := NewService(nil)
	labels, err := svc.Resolve(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"good-first-issue", "C-bug", "C-feature", "P-merge", "P-block"}, names(labels))
	assert.Equal(t, []string{"#4ade80", "#ef4444", "#f87171", "#3b82f6", "#60a5fa"}, colors(labels))
}

func TestResolve_StandaloneBeforeGroups(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Groups: []config.Group{
			{Colors: config.Fixed{Hex: "#111111"}, Labels: bare("from-group")},
		},
		Labels: []config.StandaloneLabel{
			{Name: "standalone-a", Color: "#222222"},
			{Name: "standalone-b", Color: "#333333"},
		},
	}

	labels, err := NewService(nil).Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"standalone-a", "standalone-b", "from-group"}, names(labels))
}

func TestResolve_StandaloneLabelFields(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Labels: []config.StandaloneLabel{
			{Name: " good first issue ", Color: "#4ade80", Description: strPtr("Good issue for newcomers"), Aliases: []string{"help wanted"}},
		},
	}

	labels, err := NewService(nil).Resolve(cfg)
	require.NoError(t, err)
	require.Len(t, labels, 1)

	assert.Equal(t, "good first issue", labels[0].Name)
	assert.Equal(t, "#4ade80", labels[0].Color)
	assert.Equal(t, "Good issue for newcomers", labels[0].DescriptionOrEmpty())
	assert.Equal(t, []string{"help wanted"}, labels[0].Aliases)
}

func TestResolve_Deterministic(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Labels:  []config.StandaloneLabel{{Name: "triage", Color: "#abcdef"}},
		Groups: []config.Group{
			{Prefix: "A-", Colors: config.Palette{Name: "violet"}, Labels: bare("one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten")},
			{Prefix: "B-", Colors: config.Fixed{Hex: "#123456"}, Labels: bare("x", "y")},
		},
	}

	svc := NewService(nil)
	first, err := svc.Resolve(cfg)
	require.NoError(t, err)
	second, err := svc.Resolve(cfg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolve_DuplicateAcrossGroupAndStandalone(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Labels:  []config.StandaloneLabel{{Name: "bug", Color: "#ff0000"}},
		Groups: []config.Group{
			{Colors: config.Palette{Name: "red"}, Labels: bare("bug")},
		},
	}

	labels, err := NewService(nil).Resolve(cfg)
	assert.Nil(t, labels)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrDuplicateLabelName)
	var dup *DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "bug", dup.Name)
	assert.Equal(t, `duplicate label name "bug"`, err.Error())
}

func TestResolve_DuplicateAfterPrefix(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Groups: []config.Group{
			{Prefix: "C-", Colors: config.Palette{Name: "red"}, Labels: bare("bug")},
			{Colors: config.Palette{Name: "blue"}, Labels: bare("C-bug")},
		},
	}

	_, err := NewService(nil).Resolve(cfg)
	var dup *DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "C-bug", dup.Name)
}

func TestResolve_FirstDuplicateInListOrder(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Groups: []config.Group{
			{Colors: config.Palette{Name: "red"}, Labels: bare("a", "b", "b", "a")},
		},
	}

	_, err := NewService(nil).Resolve(cfg)
	var dup *DuplicateLabelError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "b", dup.Name)
}

func TestResolve_DuplicatesAreCaseSensitive(t *testing.T) {
	cfg := &config.Config{
		Version: "1",
		Groups: []config.Group{
			{Colors: config.Palette{Name: "red"}, Labels: bare("Bug", "bug")},
		},
	}

	labels, err := NewService(nil).Resolve(cfg)
	require.NoError(t, err)
	assert.Len(t, labels, 2)
}

func TestResolve_AliasesNotValidated(t *testing.T) {
	// An alias may repeat or even match another label's name
	cfg := &config.Config{
		Version: "1",
		Labels:  []config.StandaloneLabel{{Name: "bug", Color: "#ff0000", Aliases: []string{"x", "x"}}},
		Groups: []config.Group{
			{Colors: config.Palette{Name: "red"}, Labels: []config.LabelEntry{config.DetailedLabel{Name: "defect", Aliases: []string{"bug"}}}},
		},
	}

	labels, err := NewService(nil).Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, labels[0].Aliases)
	assert.Equal(t, []string{"bug"}, labels[1].Aliases)
}

func TestResolve_UnsupportedVersion(t *testing.T) {
	for _, version := range []string{"", "2", "1.0"} {
		t.Run(version, func(t *testing.T) {
			_, err := NewService(nil).Resolve(&config.Config{Version: version})
			assert.ErrorIs(t, err, ErrUnsupportedVersion)
		})
	}
}

func TestResolve_NilConfig(t *testing.T) {
	var labels []*models.Label
	var err error
	require.NotPanics(t, func() {
		labels, err = NewService(nil).Resolve(nil)
	})
	assert.ErrorIs(t, err, ErrNilConfig)
	assert.Nil(t, labels)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *config.Config
		target error
	}{
		{
			name: "empty group",
			cfg: &config.Config{Version: "1", Groups: []config.Group{
				{Colors: config.Palette{Name: "red"}, Labels: bare("ok")},
				{Prefix: "E-", Colors: config.Palette{Name: "red"}},
			}},
			target: ErrEmptyGroup,
		},
		{
			name: "unknown palette",
			cfg: &config.Config{Version: "1", Groups: []config.Group{
				{Colors: config.Palette{Name: "nonexistent"}, Labels: bare("bug")},
			}},
			target: palette.ErrUnknownPalette,
		},
		{
			name: "empty standalone name",
			cfg: &config.Config{Version: "1", Labels: []config.StandaloneLabel{
				{Name: " ", Color: "#ff0000"},
			}},
			target: ErrEmptyLabelName,
		},
		{
			name: "malformed standalone color",
			cfg: &config.Config{Version: "1", Labels: []config.StandaloneLabel{
				{Name: "bug", Color: "red"},
			}},
			target: ErrInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels, err := NewService(nil).Resolve(tt.cfg)
			assert.Nil(t, labels, "no partial output on failure")
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestResolve_GroupContextInError(t *testing.T) {
	cfg := &config.Config{Version: "1", Groups: []config.Group{
		{Colors: config.Palette{Name: "red"}, Labels: bare("ok")},
		{Prefix: "T-", Colors: config.Palette{Name: "nonexistent"}, Labels: bare("bug")},
	}}

	_, err := NewService(nil).Resolve(cfg)
	var groupErr *GroupError
	require.ErrorAs(t, err, &groupErr)
	assert.Equal(t, 1, groupErr.Index)
	assert.Equal(t, "T-", groupErr.Prefix)
	assert.Contains(t, err.Error(), `unknown palette "nonexistent"`)
}

func TestResolve_StandaloneContextInError(t *testing.T) {
	cfg := &config.Config{Version: "1", Labels: []config.StandaloneLabel{
		{Name: "fine", Color: "#ffffff"},
		{Name: "broken", Color: "#fff"},
	}}

	_, err := NewService(nil).Resolve(cfg)
	var labelErr *LabelError
	require.ErrorAs(t, err, &labelErr)
	assert.Equal(t, 1, labelErr.Index)
	assert.Equal(t, "broken", labelErr.Name)
}

func TestResolve_EmptyConfig(t *testing.T) {
	labels, err := NewService(nil).Resolve(&config.Config{Version: "1"})
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestResolve_CustomRegistry(t *testing.T) {
	svc := NewService(triRegistry())
	labels, err := svc.Resolve(&config.Config{Version: "1", Groups: []config.Group{
		{Colors: config.Palette{Name: "tri"}, Labels: bare("a", "b", "c", "d")},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"#000001", "#000002", "#000003", "#000001"}, colors(labels))

	_, err = svc.Resolve(&config.Config{Version: "1", Groups: []config.Group{
		{Colors: config.Palette{Name: "red"}, Labels: bare("a")},
	}})
	assert.ErrorIs(t, err, palette.ErrUnknownPalette)
}
