package services

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/dtos"
)

//go:embed data/prayers.json
var prayersFS embed.FS

var ErrPrayerNotFound = errors.New("prayer not found")

type PrayerServicer interface {
	SelectPrayers(ctx context.Context) ([]dtos.PrayerResponse, error)
	SelectPrayerById(ctx context.Context, prayerId string) (dtos.PrayerResponse, error)
}

type prayer struct {
	configs configs.Configs
	once    sync.Once
	prayers []dtos.PrayerResponse
	byId    map[string]dtos.PrayerResponse
	err     error
}

func NewPrayerService(configs configs.Configs) PrayerServicer {
	return &prayer{
		configs: configs,
	}
}

func (p *prayer) load() {
	raw, err := prayersFS.ReadFile("data/prayers.json")
	if err != nil {
		p.err = fmt.Errorf("failed to read embedded prayers: %w", err)
		return
	}

	var prayers []dtos.PrayerResponse
	if err := json.Unmarshal(raw, &prayers); err != nil {
		p.err = fmt.Errorf("failed to parse embedded prayers: %w", err)
		return
	}

	byId := make(map[string]dtos.PrayerResponse, len(prayers))
	for _, prayer := range prayers {
		if err := p.configs.Validate.Struct(prayer); err != nil {
			p.err = fmt.Errorf("invalid prayer %q: %w", prayer.Id, err)
			return
		}

		if _, exists := byId[prayer.Id]; exists {
			p.err = fmt.Errorf("duplicate prayer %q", prayer.Id)
			return
		}
		byId[prayer.Id] = prayer
	}

	p.prayers = prayers
	p.byId = byId
}

func (p *prayer) SelectPrayers(_ context.Context) ([]dtos.PrayerResponse, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return nil, p.err
	}

	prayers := make([]dtos.PrayerResponse, len(p.prayers))
	copy(prayers, p.prayers)
	return prayers, nil
}

func (p *prayer) SelectPrayerById(_ context.Context, prayerId string) (dtos.PrayerResponse, error) {
	p.once.Do(p.load)
	if p.err != nil {
		return dtos.PrayerResponse{}, p.err
	}

	prayer, ok := p.byId[prayerId]
	if !ok {
		return dtos.PrayerResponse{}, ErrPrayerNotFound
	}

	return prayer, nil
}
