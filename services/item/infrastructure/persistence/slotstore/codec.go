package slotstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/campuslost/lostfound/services/item/domain/models"
)

// itemRecord is the persisted shape of an Item. Field names are the storage
// contract shared with every existing slot; there is no schema version, so
// renaming a field orphans previously stored data.
type itemRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Location    string       `json:"location"`
	DateFound   models.Date  `json:"dateFound"`
	Description string       `json:"description"`
	Images      []string     `json:"images"`
	Finder      finderRecord `json:"finder"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type finderRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// encodeCollection serializes items in order as a JSON array.
func encodeCollection(items []*models.Item) (string, error) {
	records := make([]itemRecord, len(items))
	for i, item := range items {
		records[i] = itemToRecord(item)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode collection: %w", err)
	}
	return string(data), nil
}

// decodeCollection parses a stored collection. A blank slot or JSON null is
// an empty collection; anything that is not an array of item objects is an error.
func decodeCollection(raw string) ([]*models.Item, error) {
	if strings.TrimSpace(raw) == "" {
		return []*models.Item{}, nil
	}

	var records []*itemRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	items := make([]*models.Item, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		items = append(items, recordToItem(rec))
	}
	return items, nil
}

func itemToRecord(item *models.Item) itemRecord {
	return itemRecord{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category.String(),
		Location:    item.Location.String(),
		DateFound:   item.DateFound,
		Description: item.Description,
		Images:      item.Images,
		Finder: finderRecord{
			Name:  item.Finder.Name,
			Email: item.Finder.Email,
			Phone: item.Finder.Phone,
		},
		CreatedAt: item.CreatedAt,
	}
}

// recordToItem trusts stored values: category and location are not re-validated.
func recordToItem(rec *itemRecord) *models.Item {
	return &models.Item{
		ID:          rec.ID,
		Name:        rec.Name,
		Category:    models.Category(rec.Category),
		Location:    models.Location(rec.Location),
		DateFound:   rec.DateFound,
		Description: rec.Description,
		Images:      rec.Images,
		Finder: models.Finder{
			Name:  rec.Finder.Name,
			Email: rec.Finder.Email,
			Phone: rec.Finder.Phone,
		},
		CreatedAt: rec.CreatedAt,
	}
}
