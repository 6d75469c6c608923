package filter

import "github.com/s0up4200/valapi/valorant"

// AgentEnv flattens an agent into the variables exposed to filter
// expressions: Name, Role, Playable, BaseContent, DeveloperName,
// Tags and Abilities.
func AgentEnv(agent valorant.Agent) map[string]any {
	abilities := make([]string, 0, len(agent.Abilities))
	for _, ability := range agent.Abilities {
		abilities = append(abilities, ability.DisplayName)
	}

	role := ""
	if agent.Role != nil {
		role = agent.Role.DisplayName
	}

	return map[string]any{
		"UUID":          agent.UUID,
		"Name":          agent.DisplayName,
		"DeveloperName": agent.DeveloperName,
		"Role":          role,
		"Playable":      agent.IsPlayableCharacter,
		"BaseContent":   agent.IsBaseContent,
		"Tags":          agent.CharacterTags,
		"Abilities":     abilities,
	}
}

// MatchAgents returns the agents whose environment satisfies the filter
func MatchAgents(f *Filter, agents []valorant.Agent) ([]valorant.Agent, error) {
	matched := make([]valorant.Agent, 0, len(agents))
	for _, agent := range agents {
		ok, err := f.Match(AgentEnv(agent))
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, agent)
		}
	}
	return matched, nil
}
