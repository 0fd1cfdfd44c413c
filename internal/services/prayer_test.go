package services

import (
	"context"
	"errors"
	"testing"
)

func TestPrayerService(t *testing.T) {
	ctx := context.TODO()
	service := NewPrayerService(testConfigs())

	prayers, err := service.SelectPrayers(ctx)
	if err != nil {
		t.Fatalf("wasn't expecting error, got: %v", err)
	}

	if len(prayers) != 10 {
		t.Fatalf("expected 10 prayers, got %d", len(prayers))
	}

	if prayers[0].Id != "sign-of-the-cross" {
		t.Errorf("expected catalog order to be kept, got %q first", prayers[0].Id)
	}

	prayers[0].Name = "changed"
	again, _ := service.SelectPrayers(ctx)
	if again[0].Name != "Sign of the Cross" {
		t.Error("catalog was modified through a returned slice")
	}

	table := []struct {
		name         string
		prayerId     string
		expectedName string
		expectedErr  error
	}{
		{
			name:         "Found",
			prayerId:     "memorare",
			expectedName: "Memorare",
		},
		{
			name:        "Not Found",
			prayerId:    "unknown",
			expectedErr: ErrPrayerNotFound,
		},
	}

	for _, v := range table {
		t.Run(v.name, func(t *testing.T) {
			prayer, err := service.SelectPrayerById(ctx, v.prayerId)
			if !errors.Is(err, v.expectedErr) {
				t.Fatalf("expected error %v, got %v", v.expectedErr, err)
			}

			if prayer.Name != v.expectedName {
				t.Errorf("expected name %q, got %q", v.expectedName, prayer.Name)
			}
		})
	}
}
