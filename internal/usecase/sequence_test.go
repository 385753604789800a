package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "garantias_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestScanNumberGenerator_Next(t *testing.T) {
	t.Run("first of the year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "GAR")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), "GAR-2024-").Return("", nil)

		got, err := g.Next(context.Background(), 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "GAR-2024-0001" {
			t.Errorf("number = %q, want GAR-2024-0001", got)
		}
	})

	t.Run("increments trailing segment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "GAR")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), "GAR-2024-").Return("GAR-2024-0009", nil)

		got, err := g.Next(context.Background(), 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "GAR-2024-0010" {
			t.Errorf("number = %q, want GAR-2024-0010", got)
		}
	})

	t.Run("grows past four digits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "FAC")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), "FAC-2024-").Return("FAC-2024-9999", nil)

		got, err := g.Next(context.Background(), 2024)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "FAC-2024-10000" {
			t.Errorf("number = %q, want FAC-2024-10000", got)
		}
	})

	t.Run("independent years", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "FAC")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), "FAC-2025-").Return("", nil)

		got, err := g.Next(context.Background(), 2025)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "FAC-2025-0001" {
			t.Errorf("number = %q, want FAC-2025-0001", got)
		}
	})

	t.Run("source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "GAR")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), gomock.Any()).Return("", errors.New("db"))

		if _, err := g.Next(context.Background(), 2024); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("malformed stored number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		source := mock_interfaces.NewMockISequenceSource(ctrl)
		g := NewScanNumberGenerator(source, "GAR")

		source.EXPECT().LastNumberWithPrefix(gomock.Any(), gomock.Any()).Return("GAR-2024-", nil)

		if _, err := g.Next(context.Background(), 2024); err == nil {
			t.Fatal("expected error for malformed number")
		}
	})
}
