package whiskybase

import (
	"encoding/json"

	"github.com/gocolly/colly/v2"
	"go.uber.org/multierr"

	"marwood.io/WhiskeyVault/pkg/model"
)

type distilleryJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       struct {
		ContentURL string `json:"contentUrl"`
	} `json:"image"`
	Address struct {
		AddressRegion  string `json:"addressRegion"`
		AddressCountry string `json:"addressCountry"`
	} `json:"address"`
}

func (w *WhiskybaseIntegration) FindDistillery(name string) ([]model.Distillery, error) {
	collector := colly.NewCollector(
		colly.AllowedDomains("www.whiskybase.com", "whiskybase.com"),
	)

	var (
		errs    error
		results []model.Distillery
	)

	collector.OnHTML(".distillery-item", func(element *colly.HTMLElement) {
		distilleryURI := element.ChildAttr(".name > a", "href")
		if len(distilleryURI) == 0 {
			return
		}

		distillery, err := w.getDistilleryFromURI(distilleryURI, collector)
		if multierr.AppendInto(&errs, err) {
			return
		}

		results = append(results, distillery)
	})

	multierr.AppendInto(&errs, collector.Visit("https://www.whiskybase.com/search?q="+name+"&type=distillery"))

	return results, errs
}

func (w *WhiskybaseIntegration) getDistilleryFromURI(uri string, collector *colly.Collector) (model.Distillery, error) {
	var (
		errs       error
		distillery model.Distillery
	)

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var payload distilleryJSON
		_ = json.Unmarshal([]byte(element.Text), &payload)

		distillery = model.Distillery{
			Name:        payload.Name,
			Description: stringPointer(payload.Description),
			Region:      stringPointer(payload.Address.AddressRegion),
			Country:     stringPointer(payload.Address.AddressCountry),
			ImageURL:    stringPointer(payload.Image.ContentURL),
			Website:     stringPointer(payload.URL),
			IsActive:    true,
		}
	})

	multierr.AppendInto(&errs, collector.Visit(uri))

	return distillery, errs
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
