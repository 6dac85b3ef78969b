package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/evgeniy-krivenko/minds/internal/entity"
)

func DefaultSeed() []entity.Mind {
	return []entity.Mind{
		{
			ID:          1,
			PublishTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Content:     "This is a test content.",
		},
		{
			ID:          2,
			PublishTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Content:     "普普通通的第二段测试内容。",
		},
		{
			ID:          3,
			PublishTime: time.Date(2024, 10, 31, 23, 59, 59, 0, time.UTC),
			Content:     "写点什么好呢？",
		},
	}
}

type seedFile struct {
	Minds []seedMind `yaml:"minds"`
}

type seedMind struct {
	ID          uint64    `yaml:"id"`
	PublishTime time.Time `yaml:"publish_time"`
	Content     string    `yaml:"content"`
}

// LoadSeed reads seed minds from a YAML document of the form
//
//	minds:
//	  - id: 1
//	    publish_time: 2024-01-01T00:00:00Z
//	    content: first
func LoadSeed(path string) ([]entity.Mind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %v", err)
	}

	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]entity.Mind, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %v", err)
	}

	seen := make(map[uint64]struct{}, len(f.Minds))
	minds := make([]entity.Mind, 0, len(f.Minds))

	for i, m := range f.Minds {
		if m.ID == 0 {
			return nil, fmt.Errorf("seed mind #%d: %w: id must be positive", i, entity.ErrInvalidID)
		}

		if _, ok := seen[m.ID]; ok {
			return nil, fmt.Errorf("seed mind #%d: %w: duplicate id %d", i, entity.ErrInvalidID, m.ID)
		}
		seen[m.ID] = struct{}{}

		minds = append(minds, entity.Mind{
			ID:          m.ID,
			PublishTime: entity.PublishTimeAt(m.PublishTime),
			Content:     m.Content,
		})
	}

	return minds, nil
}
