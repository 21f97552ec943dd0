package assistant

import (
	"errors"
	"fmt"
	"strings"

	"ads-manager/internal/core/domain"
)

const genericSuccess = "Operation completed successfully."

// Render turns a successful tool result into the assistant's reply. Nil
// detail results produce a not-found sentence and unknown tools a generic
// confirmation.
func Render(tool string, result any, _ domain.Context) string {
	switch tool {
	case ToolGetAllCampaigns:
		campaigns, _ := result.([]domain.Campaign)
		return campaignList(campaigns)
	case ToolGetCampaign:
		c, _ := result.(*domain.Campaign)
		if c == nil {
			return "I couldn't find that campaign. Please check the campaign ID."
		}
		return fmt.Sprintf(`Here's your campaign "%s" with objective %s and status %s.`, c.Name, c.Objective.Label(), c.Status)
	case ToolCreateCampaign:
		c, ok := result.(*domain.Campaign)
		if !ok || c == nil {
			return genericSuccess
		}
		return fmt.Sprintf(`Excellent! I've successfully created your campaign "%s" with objective %s. The campaign is now %s and ready to go!`,
			c.Name, c.Objective.Label(), strings.ToLower(string(c.Status)))
	case ToolUpdateCampaign:
		c, ok := result.(*domain.Campaign)
		if !ok || c == nil {
			return genericSuccess
		}
		return updated("campaign", c.Name)
	case ToolDeleteCampaign:
		return "Campaign deleted successfully. The campaign and all its ad sets and ads have been removed."

	case ToolGetAllAdSets:
		sets, _ := result.([]domain.AdSet)
		return adSetList(sets)
	case ToolGetAdSet:
		s, _ := result.(*domain.AdSet)
		if s == nil {
			return "I couldn't find that ad set. Please check the ad set ID."
		}
		return fmt.Sprintf(`Here's your ad set "%s" with a daily budget of %s.`, s.Name, FormatCents(s.DailyBudget))
	case ToolCreateAdSet:
		s, ok := result.(*domain.AdSet)
		if !ok || s == nil {
			return genericSuccess
		}
		return fmt.Sprintf(`Great! I've created your ad set "%s" with a daily budget of %s. It's ready to start running ads!`, s.Name, FormatCents(s.DailyBudget))
	case ToolUpdateAdSet:
		s, ok := result.(*domain.AdSet)
		if !ok || s == nil {
			return genericSuccess
		}
		return updated("ad set", s.Name)
	case ToolDeleteAdSet:
		return "Ad set deleted successfully. The ad set and all its ads have been removed."

	case ToolGetAllAds:
		ads, _ := result.([]domain.Ad)
		return adList(ads)
	case ToolGetAd:
		a, _ := result.(*domain.Ad)
		if a == nil {
			return "I couldn't find that ad. Please check the ad ID."
		}
		return fmt.Sprintf(`Here's your ad "%s" with creative ID %s and status %s.`, a.Name, a.CreativeID, a.Status)
	case ToolCreateAd:
		a, ok := result.(*domain.Ad)
		if !ok || a == nil {
			return genericSuccess
		}
		return fmt.Sprintf(`Awesome! I've created your ad "%s" with creative ID %s. The ad is %s and ready to reach your audience!`,
			a.Name, a.CreativeID, strings.ToLower(string(a.Status)))
	case ToolUpdateAd:
		a, ok := result.(*domain.Ad)
		if !ok || a == nil {
			return genericSuccess
		}
		return updated("ad", a.Name)
	case ToolDeleteAd:
		return "Ad deleted successfully. The ad has been removed from the ad set."
	}
	return genericSuccess
}

// RenderError turns a failed tool call into the assistant's reply. The
// underlying error message is embedded verbatim. Unknown tools always use
// the generic template.
func RenderError(_ string, c domain.Context, err error) string {
	msg := errorMessage(err)
	if errors.Is(err, domain.ErrUnknownTool) {
		c = ""
	}
	switch c {
	case domain.ContextCampaigns:
		return fmt.Sprintf("I apologize, but there was an error with your campaign operation: %s. Please try again or check your campaign details.", msg)
	case domain.ContextAdSets:
		return fmt.Sprintf("I apologize, but there was an error with your ad set operation: %s. Please try again or check your ad set details.", msg)
	case domain.ContextAds:
		return fmt.Sprintf("I apologize, but there was an error with your ad operation: %s. Please try again or check your ad details.", msg)
	default:
		return fmt.Sprintf("I apologize, but there was an error: %s. Please try again.", msg)
	}
}

// FormatCents renders an amount in cents as dollars, e.g. 5000 → "$50.00".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func errorMessage(err error) string {
	var te *ToolError
	if errors.As(err, &te) {
		err = te.Err
	}
	if err == nil || err.Error() == "" {
		return "Unknown error occurred"
	}
	return err.Error()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func updated(kind, name string) string {
	return fmt.Sprintf(`Perfect! I've updated your %s "%s". The changes have been applied successfully.`, kind, name)
}

func campaignList(campaigns []domain.Campaign) string {
	if len(campaigns) == 0 {
		return "You don't have any campaigns yet. Would you like me to help you create your first campaign?"
	}
	items := make([]string, len(campaigns))
	for i, c := range campaigns {
		items[i] = fmt.Sprintf(`"%s" (%s)`, c.Name, c.Objective.Label())
	}
	return fmt.Sprintf("I found %s. Here are your campaigns: %s.", plural(len(campaigns), "campaign"), strings.Join(items, ", "))
}

func adSetList(sets []domain.AdSet) string {
	if len(sets) == 0 {
		return "This campaign doesn't have any ad sets yet. Would you like me to help you create your first ad set?"
	}
	items := make([]string, len(sets))
	for i, s := range sets {
		items[i] = fmt.Sprintf(`"%s" (%s/day)`, s.Name, FormatCents(s.DailyBudget))
	}
	return fmt.Sprintf("I found %s: %s.", plural(len(sets), "ad set"), strings.Join(items, ", "))
}

func adList(ads []domain.Ad) string {
	if len(ads) == 0 {
		return "This ad set doesn't have any ads yet. Would you like me to help you create your first ad?"
	}
	items := make([]string, len(ads))
	for i, a := range ads {
		items[i] = fmt.Sprintf(`"%s" (%s)`, a.Name, a.Status)
	}
	return fmt.Sprintf("I found %s: %s.", plural(len(ads), "ad"), strings.Join(items, ", "))
}
