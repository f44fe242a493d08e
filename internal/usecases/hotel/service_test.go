package hotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	hotelmocks "github.com/vfg2006/revenue-optimizer-api/internal/usecases/hotel/mocks"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	hotels    *mocks.MockHotelRepository
	profiles  *mocks.MockOTAProfileRepository
	scheduler *hotelmocks.MockAutoModeScheduler
	service   *Service
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		hotels:    mocks.NewMockHotelRepository(ctrl),
		profiles:  mocks.NewMockOTAProfileRepository(ctrl),
		scheduler: hotelmocks.NewMockAutoModeScheduler(ctrl),
	}
	f.service = NewService(f.hotels, f.profiles)
	f.service.SetScheduler(f.scheduler)
	return f
}

func storedHotel() *domain.HotelConfig {
	return &domain.HotelConfig{
		ID:            "htl_1",
		Name:          "Harbor Inn",
		Location:      domain.Location{City: "Boston", Country: "USA"},
		TotalRooms:    120,
		BaseOccupancy: 70,
		MinPrice:      90,
		MaxPrice:      400,
		StarRating:    4,
		Active:        true,
	}
}

func assertHotelError(t *testing.T, err error, base error, code string) {
	t.Helper()
	require.Error(t, err)
	var hotelErr *HotelError
	require.True(t, errors.As(err, &hotelErr))
	assert.ErrorIs(t, err, base)
	assert.Equal(t, code, hotelErr.Code)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name     string
		request  *domain.CreateHotelRequest
		setup    func(f fixture)
		validate func(t *testing.T, hotel *domain.HotelConfig, err error)
	}{
		{
			name: "Cria hotel com valores padrão e agenda modo automático",
			request: &domain.CreateHotelRequest{
				HotelSettings: domain.HotelSettings{
					Name:     "Harbor Inn",
					Location: domain.Location{City: "Boston", Country: "USA"},
				},
				AutoMode: true,
			},
			setup: func(f fixture) {
				f.hotels.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Schedule(gomock.Any()).
					DoAndReturn(func(h domain.HotelConfig) error {
						assert.True(t, h.AutoMode)
						return nil
					})
			},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				require.NoError(t, err)
				assert.Regexp(t, `^htl_[0-9a-z]{10}$`, hotel.ID)
				assert.Equal(t, domain.DefaultTotalRooms, hotel.TotalRooms)
				assert.Equal(t, domain.DefaultMinPrice, hotel.MinPrice)
				assert.Equal(t, domain.DefaultMaxPrice, hotel.MaxPrice)
				assert.Equal(t, domain.DefaultStarRating, hotel.StarRating)
				assert.True(t, hotel.Active)
			},
		},
		{
			name: "Hotel sem modo automático é removido do agendador",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{
				Name:     "Harbor Inn",
				Location: domain.Location{City: "Boston"},
			}},
			setup: func(f fixture) {
				f.hotels.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Unschedule(gomock.Any())
			},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				require.NoError(t, err)
				assert.False(t, hotel.AutoMode)
			},
		},
		{
			name:    "Nome obrigatório",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{Location: domain.Location{City: "Boston"}}},
			setup:   func(f fixture) {},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				assert.Nil(t, hotel)
				assertHotelError(t, err, ErrInvalidHotel, apiErrors.ErrMissingRequiredData)
			},
		},
		{
			name: "Faixa de preço invertida é configuração inválida",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{
				Name:     "Harbor Inn",
				Location: domain.Location{City: "Boston"},
				MinPrice: utils.Ptr(300.0),
				MaxPrice: utils.Ptr(100.0),
			}},
			setup: func(f fixture) {},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				assertHotelError(t, err, ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig)
			},
		},
		{
			name: "Zero quartos explícito não vira o valor padrão",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{
				Name:       "Harbor Inn",
				Location:   domain.Location{City: "Boston"},
				TotalRooms: utils.Ptr(0),
			}},
			setup: func(f fixture) {},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				assert.Nil(t, hotel)
				assertHotelError(t, err, ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig)
			},
		},
		{
			name: "Ocupação base zero explícita é mantida",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{
				Name:          "Harbor Inn",
				Location:      domain.Location{City: "Boston"},
				BaseOccupancy: utils.Ptr(0.0),
			}},
			setup: func(f fixture) {
				f.hotels.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				f.scheduler.EXPECT().Unschedule(gomock.Any())
			},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				require.NoError(t, err)
				assert.Zero(t, hotel.BaseOccupancy)
				assert.Equal(t, domain.DefaultTotalRooms, hotel.TotalRooms)
			},
		},
		{
			name: "Erro de banco",
			request: &domain.CreateHotelRequest{HotelSettings: domain.HotelSettings{
				Name:     "Harbor Inn",
				Location: domain.Location{City: "Boston"},
			}},
			setup: func(f fixture) {
				f.hotels.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			validate: func(t *testing.T, hotel *domain.HotelConfig, err error) {
				assertHotelError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			hotel, err := f.service.Create(context.Background(), tt.request)
			tt.validate(t, hotel, err)
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.hotels.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, nil)

	_, err := f.service.Get(context.Background(), "missing")

	assertHotelError(t, err, ErrHotelNotFound, apiErrors.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	maxPrice := 600.0
	active := false

	f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(storedHotel(), nil)
	f.hotels.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *domain.HotelConfig) error {
			assert.Equal(t, 600.0, h.MaxPrice)
			assert.Equal(t, 90.0, h.MinPrice)
			return nil
		})
	f.scheduler.EXPECT().Unschedule("htl_1")

	hotel, err := f.service.Update(context.Background(), &domain.UpdateHotelRequest{
		ID:       "htl_1",
		MaxPrice: &maxPrice,
		Active:   &active,
	})

	require.NoError(t, err)
	assert.False(t, hotel.Active)
}

func TestService_SetAutoMode(t *testing.T) {
	t.Run("Ativar agenda o hotel", func(t *testing.T) {
		f := newFixture(t)
		f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(storedHotel(), nil)
		f.hotels.EXPECT().SetAutoMode(gomock.Any(), "htl_1", true).Return(nil)
		f.scheduler.EXPECT().Schedule(gomock.Any()).Return(nil)

		hotel, err := f.service.SetAutoMode(context.Background(), "htl_1", true)

		require.NoError(t, err)
		assert.True(t, hotel.AutoMode)
	})

	t.Run("Desativar remove o agendamento imediatamente", func(t *testing.T) {
		f := newFixture(t)
		stored := storedHotel()
		stored.AutoMode = true
		f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(stored, nil)
		f.hotels.EXPECT().SetAutoMode(gomock.Any(), "htl_1", false).Return(nil)
		f.scheduler.EXPECT().Unschedule("htl_1")

		hotel, err := f.service.SetAutoMode(context.Background(), "htl_1", false)

		require.NoError(t, err)
		assert.False(t, hotel.AutoMode)
	})

	t.Run("Falha do agendador vira erro", func(t *testing.T) {
		f := newFixture(t)
		f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(storedHotel(), nil)
		f.hotels.EXPECT().SetAutoMode(gomock.Any(), "htl_1", true).Return(nil)
		f.scheduler.EXPECT().Schedule(gomock.Any()).Return(errors.New("scheduler stopped"))

		_, err := f.service.SetAutoMode(context.Background(), "htl_1", true)

		assertHotelError(t, err, ErrScheduleAutoMode, apiErrors.ErrInternalServer)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("Remove hotel e agendamento", func(t *testing.T) {
		f := newFixture(t)
		f.hotels.EXPECT().Delete(gomock.Any(), "htl_1").Return(nil)
		f.scheduler.EXPECT().Unschedule("htl_1")

		require.NoError(t, f.service.Delete(context.Background(), "htl_1"))
	})

	t.Run("Hotel inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.hotels.EXPECT().Delete(gomock.Any(), "htl_x").Return(repository.ErrNotFound)

		err := f.service.Delete(context.Background(), "htl_x")

		assertHotelError(t, err, ErrHotelNotFound, apiErrors.ErrNotFound)
	})
}

func TestService_Resolve(t *testing.T) {
	t.Run("Configuração avulsa recebe valores padrão", func(t *testing.T) {
		f := newFixture(t)

		hotel, err := f.service.Resolve(context.Background(), "", &domain.HotelSettings{
			Location:   domain.Location{City: "Toronto", Country: "Canada"},
			StarRating: utils.Ptr(4),
		})

		require.NoError(t, err)
		assert.Equal(t, 100, hotel.TotalRooms)
		assert.Equal(t, 65.0, hotel.BaseOccupancy)
		assert.Equal(t, 4, hotel.StarRating)
	})

	t.Run("ID tem precedência sobre configuração avulsa", func(t *testing.T) {
		f := newFixture(t)
		f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(storedHotel(), nil)

		hotel, err := f.service.Resolve(context.Background(), "htl_1", &domain.HotelSettings{TotalRooms: utils.Ptr(5)})

		require.NoError(t, err)
		assert.Equal(t, 120, hotel.TotalRooms)
	})

	t.Run("Sem ID nem configuração", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Resolve(context.Background(), "", nil)

		assertHotelError(t, err, ErrHotelRequired, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Estrelas fora do intervalo", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Resolve(context.Background(), "", &domain.HotelSettings{StarRating: utils.Ptr(7)})

		assertHotelError(t, err, ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig)
	})

	t.Run("Zeros explícitos chegam à validação sem valores padrão", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Resolve(context.Background(), "", &domain.HotelSettings{
			Location:      domain.Location{City: "Boston", Country: "USA"},
			TotalRooms:    utils.Ptr(0),
			BaseOccupancy: utils.Ptr(0.0),
			MinPrice:      utils.Ptr(0.0),
			MaxPrice:      utils.Ptr(0.0),
			StarRating:    utils.Ptr(3),
		})

		assertHotelError(t, err, ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig)
	})

	t.Run("Ocupação base zero e preço mínimo zero são mantidos", func(t *testing.T) {
		f := newFixture(t)

		hotel, err := f.service.Resolve(context.Background(), "", &domain.HotelSettings{
			Location:      domain.Location{City: "Boston", Country: "USA"},
			BaseOccupancy: utils.Ptr(0.0),
			MinPrice:      utils.Ptr(0.0),
		})

		require.NoError(t, err)
		assert.Zero(t, hotel.BaseOccupancy)
		assert.Zero(t, hotel.MinPrice)
		assert.Equal(t, domain.DefaultMaxPrice, hotel.MaxPrice)
		assert.Equal(t, domain.DefaultTotalRooms, hotel.TotalRooms)
	})
}

func TestService_ReplaceOTAProfiles(t *testing.T) {
	tests := []struct {
		name     string
		profiles []domain.OTACommissionProfile
		setup    func(f fixture)
		wantCode string
	}{
		{
			name: "Substitui perfis e preenche o hotel",
			profiles: []domain.OTACommissionProfile{
				{Channel: "booking.com", CommissionRate: 0.18, BookingShare: 0.35},
				{Channel: "expedia", CommissionRate: 0.20, BookingShare: 0.15},
			},
			setup: func(f fixture) {
				f.profiles.EXPECT().ReplaceForHotel(gomock.Any(), "htl_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, p []domain.OTACommissionProfile) error {
						require.Len(t, p, 2)
						assert.Equal(t, "htl_1", p[0].HotelID)
						assert.Equal(t, "htl_1", p[1].HotelID)
						return nil
					})
			},
		},
		{
			name:     "Lista vazia apaga os perfis",
			profiles: nil,
			setup: func(f fixture) {
				f.profiles.EXPECT().ReplaceForHotel(gomock.Any(), "htl_1", gomock.Len(0)).Return(nil)
			},
		},
		{
			name:     "Canal repetido",
			profiles: []domain.OTACommissionProfile{{Channel: "expedia"}, {Channel: "expedia"}},
			setup:    func(f fixture) {},
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Comissão acima de 100%",
			profiles: []domain.OTACommissionProfile{{Channel: "expedia", CommissionRate: 1.2}},
			setup:    func(f fixture) {},
			wantCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:     "Canal vazio",
			profiles: []domain.OTACommissionProfile{{CommissionRate: 0.1}},
			setup:    func(f fixture) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.hotels.EXPECT().GetByID(gomock.Any(), "htl_1").Return(storedHotel(), nil)
			tt.setup(f)

			saved, err := f.service.ReplaceOTAProfiles(context.Background(), "htl_1", tt.profiles)

			if tt.wantCode != "" {
				assertHotelError(t, err, ErrInvalidOTAProfile, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Len(t, saved, len(tt.profiles))
		})
	}
}
