package openai

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"marwood.io/WhiskeyVault/pkg/model"
)

const lookupSystemPrompt = `You are a whiskey expert providing accurate information about whiskeys and distilleries.
Distinguish between information about a distillery and information about a specific whiskey.
When describing a specific whiskey, include labelled lines of the form
"Distillery: ...", "Region: ...", "Country: ...", "Nose: ...", "Palate: ..." and "Finish: ...".
When describing a distillery, include "Region: ..." and "Country: ..." lines and its history.
Add interesting facts that may be relevant to a whiskey collection.`

var (
	distilleryRe = regexp.MustCompile(`(?im)^[\s*-]*distillery:\s*([^\n.]+)`)
	regionRe     = regexp.MustCompile(`(?im)^[\s*-]*region:\s*([^\n.]+)`)
	countryRe    = regexp.MustCompile(`(?im)^[\s*-]*country:\s*([^\n.]+)`)
	noseRe       = regexp.MustCompile(`(?im)^[\s*-]*nose:\s*([^\n.]+)`)
	palateRe     = regexp.MustCompile(`(?im)^[\s*-]*palate:\s*([^\n.]+)`)
	finishRe     = regexp.MustCompile(`(?im)^[\s*-]*finish:\s*([^\n.]+)`)
)

func (c *Client) LookupWhiskey(ctx context.Context, query string) (*model.WhiskeyInfo, error) {
	content, err := c.complete(ctx, lookupSystemPrompt, "Provide detailed information about the whiskey or distillery: "+query)
	if err != nil {
		c.logger.Error("whiskey lookup failed", zap.String("query", query), zap.Error(err))

		return nil, err
	}

	return ParseWhiskeyInfo(query, content), nil
}

// ParseWhiskeyInfo scrapes labelled lines out of a free-text description.
// It is best-effort: on any miss the raw description still comes back.
func ParseWhiskeyInfo(query string, content string) *model.WhiskeyInfo {
	info := &model.WhiskeyInfo{
		Name:        query,
		Description: content,
		Found:       true,
	}

	head := content
	if len(head) > 200 {
		head = head[:200]
	}

	info.IsDistillery = strings.Contains(strings.ToLower(head), "distillery") && !finishRe.MatchString(content)

	if match := regionRe.FindStringSubmatch(content); match != nil {
		info.Region = trimmed(match[1])
	}

	if match := countryRe.FindStringSubmatch(content); match != nil {
		info.Country = trimmed(match[1])
	}

	if info.IsDistillery {
		return info
	}

	if match := distilleryRe.FindStringSubmatch(content); match != nil {
		info.Distillery = trimmed(match[1])
	}

	profile := model.TasteProfile{}
	filled := false

	if match := noseRe.FindStringSubmatch(content); match != nil {
		profile.Nose = trimmed(match[1])
		filled = true
	}

	if match := palateRe.FindStringSubmatch(content); match != nil {
		profile.Palate = trimmed(match[1])
		filled = true
	}

	if match := finishRe.FindStringSubmatch(content); match != nil {
		profile.Finish = trimmed(match[1])
		filled = true
	}

	if filled {
		info.TasteProfile = &profile
	}

	return info
}

func (c *Client) AnalyzeCollection(ctx context.Context, summary string) (string, error) {
	content, err := c.complete(ctx,
		"You are a whiskey expert analyzing a personal collection. Comment on its balance of regions, styles and ages, and point out gaps worth filling.",
		"Analyze this whiskey collection:\n"+summary)
	if err != nil {
		c.logger.Error("collection analysis failed", zap.Error(err))

		return "", err
	}

	return content, nil
}

func (c *Client) Recommend(ctx context.Context, preferences string) (string, error) {
	content, err := c.complete(ctx,
		"You are a whiskey expert recommending bottles. Suggest a small number of specific whiskeys with a one-line reason each.",
		"Recommend whiskeys for someone with these preferences:\n"+preferences)
	if err != nil {
		c.logger.Error("recommendation failed", zap.Error(err))

		return "", err
	}

	return content, nil
}

func trimmed(value string) *string {
	result := strings.TrimSpace(value)
	if len(result) == 0 {
		return nil
	}

	return &result
}
