package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/valapi/valorant"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: `Role == "Duelist"`},
		{name: "boolean field", expression: `Playable`},
		{name: "compound", expression: `Playable && Role != ""`},
		{name: "collection", expression: `"Updraft" in Abilities`},
		{name: "empty", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: `Role == `, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMatch(t *testing.T) {
	f, err := Compile(`Role == "Duelist" && Playable`)
	require.NoError(t, err)

	ok, err := f.Match(map[string]any{"Role": "Duelist", "Playable": true})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.Match(map[string]any{"Role": "Controller", "Playable": true})
	require.NoError(t, err)
	assert.False(t, ok)
}

func testAgents() []valorant.Agent {
	return []valorant.Agent{
		{
			UUID:                "a1",
			DisplayName:         "Jett",
			IsPlayableCharacter: true,
			Role:                &valorant.AgentRole{DisplayName: "Duelist"},
			Abilities: []valorant.AgentAbility{
				{DisplayName: "Updraft"},
				{DisplayName: "Tailwind"},
			},
		},
		{
			UUID:                "a2",
			DisplayName:         "Brimstone",
			IsPlayableCharacter: true,
			Role:                &valorant.AgentRole{DisplayName: "Controller"},
		},
		{
			UUID:        "a3",
			DisplayName: "Jett Duplicate",
		},
	}
}

func TestMatchAgents(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantUUIDs  []string
	}{
		{
			name:       "by role",
			expression: `Role == "Duelist"`,
			wantUUIDs:  []string{"a1"},
		},
		{
			name:       "playable only",
			expression: `Playable`,
			wantUUIDs:  []string{"a1", "a2"},
		},
		{
			name:       "by ability",
			expression: `"Updraft" in Abilities`,
			wantUUIDs:  []string{"a1"},
		},
		{
			name:       "name prefix",
			expression: `Name startsWith "Jett"`,
			wantUUIDs:  []string{"a1", "a3"},
		},
		{
			name:       "no matches",
			expression: `Role == "Sentinel"`,
			wantUUIDs:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := MatchAgents(f, testAgents())
			require.NoError(t, err)

			uuids := make([]string, 0, len(matched))
			for _, agent := range matched {
				uuids = append(uuids, agent.UUID)
			}
			assert.Equal(t, tt.wantUUIDs, uuids)
		})
	}
}

func TestAgentEnvMissingRole(t *testing.T) {
	env := AgentEnv(valorant.Agent{UUID: "a3", DisplayName: "Test"})
	assert.Equal(t, "", env["Role"])
	assert.Equal(t, []string{}, env["Abilities"])
}
