package display

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors(t *testing.T) {
	assert.Equal(t, []Color{Blue, Blue2, DarkBlue, Green, Lime, Pink, Red}, Colors())
	assert.Equal(t, "#C1FF9C", Lime.Hex())
	assert.Equal(t, "#130f40", DarkBlue.Hex())
	assert.Empty(t, Color("purple").Hex())
}

func TestResolveColor(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))

	tests := []struct {
		name    string
		flag    string
		env     string
		want    Color
		wantErr bool
	}{
		{name: "flag wins over env", flag: "pink", env: "blue", want: Pink},
		{name: "env used without flag", env: "blue2", want: Blue2},
		{name: "padded flag", flag: " red ", wantErr: true},
		{name: "padded env", env: "red\n", wantErr: true},
		{name: "blank flag falls back to env", flag: "", env: "lime", want: Lime},
		{name: "invalid flag", flag: "purple", env: "blue", wantErr: true},
		{name: "invalid env", env: "teal", wantErr: true},
		{name: "case sensitive", flag: "Red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveColor(tt.flag, tt.env, rnd)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedColor)
				assert.Contains(t, err.Error(), "blue,blue2,darkblue,green,lime,pink,red")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveColorRandom(t *testing.T) {
	seen := map[Color]bool{}
	rnd := rand.New(rand.NewPCG(42, 7))
	for range 200 {
		c, err := ResolveColor("", "", rnd)
		require.NoError(t, err)
		assert.True(t, c.Valid())
		seen[c] = true
	}
	assert.Greater(t, len(seen), 1)

	c, err := ResolveColor("", "", nil)
	require.NoError(t, err)
	assert.True(t, c.Valid())
}

func TestConfig(t *testing.T) {
	cfg := Config{Color: Green, Group: "g", Slogan: "s"}
	assert.Equal(t, "#16a085", cfg.ColorHex())
	assert.False(t, cfg.HasBackground())

	cfg.BackgroundURL = "/static/bg.jpg"
	assert.True(t, cfg.HasBackground())
}
