package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/farmtrip/internal/domain"
	"github.com/spf13/pflag"
)

// profileFlags collects a preference profile from repeatable flags.
type profileFlags struct {
	landscapes []string
	styles     []string
	jobs       []string
	companion  string
}

func (p *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&p.landscapes, "landscape", nil, "Preferred landscape (repeatable, e.g. 바다,산)")
	fs.StringSliceVar(&p.styles, "style", nil, "Preferred travel style (repeatable, e.g. 힐링,체험)")
	fs.StringSliceVar(&p.jobs, "job", nil, "Preferred farm work (repeatable, e.g. 사과,수확)")
	fs.StringVar(&p.companion, "companion", "", "Travel companion: solo, couple, family, friends")
}

func (p *profileFlags) profile() (domain.PreferenceProfile, error) {
	companion := domain.CompanionType(p.companion)
	switch companion {
	case "", domain.CompanionSolo, domain.CompanionCouple, domain.CompanionFamily, domain.CompanionFriends:
	default:
		return domain.PreferenceProfile{}, fmt.Errorf("invalid companion %q (solo, couple, family, friends)", p.companion)
	}
	return domain.PreferenceProfile{
		Landscapes:   domain.CloneStrings(p.landscapes),
		TravelStyles: domain.CloneStrings(p.styles),
		JobTags:      domain.CloneStrings(p.jobs),
		Companion:    companion,
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
