package team

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// project copies the requested fields of record, addressed by their json
// names. Fields the record does not carry are reported as nil.
func project(record any, attrs []string, special map[string]func() any) (Row, error) {
	row := make(Row, len(attrs))
	if len(attrs) == 0 {
		return row, nil
	}

	var doc []byte
	for _, attr := range attrs {
		if derive, ok := special[attr]; ok {
			row[attr] = derive()
			continue
		}
		if doc == nil {
			var err error
			if doc, err = json.Marshal(record); err != nil {
				return nil, errors.Wrap(err, "failed to encode record for projection")
			}
		}
		if res := gjson.GetBytes(doc, attr); res.Exists() {
			row[attr] = res.Value()
		} else {
			row[attr] = nil
		}
	}
	return row, nil
}

// budgetInMillions converts budget amounts from thousands to millions of
// dollars. The ticket price stays in dollars.
func budgetInMillions(budget map[string]BudgetItem) map[string]BudgetItem {
	return lo.MapValues(budget, func(item BudgetItem, key string) BudgetItem {
		if key != TicketPriceItem {
			item.Amount /= 1000
		}
		return item
	})
}

func (s *Service) processAttrs(ctx context.Context, t *Team, attrs []string) (Row, error) {
	special := map[string]func() any{
		"budget": func() any { return budgetInMillions(t.Budget) },
	}

	if lo.Contains(attrs, "ovr") {
		if s.Ovr == nil {
			return nil, errMissingOvr
		}
		ovr, err := s.Ovr.Ovr(ctx, t.Tid)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to rate team %d", t.Tid)
		}
		special["ovr"] = func() any { return ovr }
	}

	return project(t, attrs, special)
}
