package normalize

import (
	"fmt"
	"strconv"

	"github.com/ritamzico/linkweight/kvconfig"
)

// parseCharList builds a rune set from a string that may mix literal UTF-8
// characters with "&#NNN;" numeric character entities, matching
// sentenceLexerConfig.cpp's parseCharList.
func parseCharList(s string) map[rune]struct{} {
	set := make(map[rune]struct{})
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '&' && i+1 < len(runes) && runes[i+1] == '#' {
			end := i + 2
			for end < len(runes) && runes[end] != ';' {
				end++
			}
			if end < len(runes) {
				if code, err := strconv.Atoi(string(runes[i+2 : end])); err == nil {
					set[rune(code)] = struct{}{}
					i = end
					continue
				}
			}
		}
		set[runes[i]] = struct{}{}
	}
	return set
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// ParseConfig parses a kvconfig string ("link=", "space=", "sep=",
// "spacesb=", "linksb=", "coversim=", "types=") into a Config, starting
// from DefaultConfig and overriding only the keys present.
func ParseConfig(s string) (Config, error) {
	cfg := DefaultConfig()
	kv, err := kvconfig.Parse(s)
	if err != nil {
		return Config{}, fmt.Errorf("normalize: %w", err)
	}

	if v, ok := kv["link"]; ok {
		cfg.LinkChars = parseCharList(v)
	}
	if v, ok := kv["space"]; ok {
		cfg.SpaceChars = parseCharList(v)
	}
	if v, ok := kv["sep"]; ok {
		cfg.SeparatorChars = parseCharList(v)
	}
	if v, ok := kv["spacesb"]; ok {
		cfg.SpaceSubst = firstRune(v, cfg.SpaceSubst)
	}
	if v, ok := kv["linksb"]; ok {
		cfg.LinkSubst = firstRune(v, cfg.LinkSubst)
	}
	if v, ok := kv["coversim"]; ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("normalize: invalid coversim %q: %w", v, err)
		}
		cfg.CoverSim = f
	}
	if v, ok := kv["types"]; ok {
		cfg.TypePriority = parseTypePriorityMap(v)
	}

	return cfg, nil
}
