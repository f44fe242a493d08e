package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-optimizer-api/internal/config"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	schedulermocks "github.com/vfg2006/revenue-optimizer-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func newAutoRefresh(t *testing.T, enabled bool) (*AutoRefreshService, *mocks.MockHotelRepository, *schedulermocks.MockRefresher) {
	ctrl := gomock.NewController(t)
	hotelRepo := mocks.NewMockHotelRepository(ctrl)
	refresher := schedulermocks.NewMockRefresher(ctrl)

	appConfig := &config.Config{
		AutoRefresh: config.AutoRefresh{Enabled: enabled, Interval: time.Hour},
	}

	return NewAutoRefreshService(hotelRepo, refresher, appConfig), hotelRepo, refresher
}

func autoHotel(id string) domain.HotelConfig {
	return domain.HotelConfig{
		ID:       id,
		Location: domain.Location{City: "Boston", Country: "USA"},
		AutoMode: true,
		Active:   true,
	}
}

func TestAutoRefreshService_ScheduleAndUnschedule(t *testing.T) {
	service, _, _ := newAutoRefresh(t, true)

	require.NoError(t, service.Schedule(autoHotel("htl_2")))
	require.NoError(t, service.Schedule(autoHotel("htl_1")))
	assert.Equal(t, []string{"htl_1", "htl_2"}, service.ScheduledHotels())

	// Reagendar o mesmo hotel não duplica o job
	require.NoError(t, service.Schedule(autoHotel("htl_1")))
	assert.Equal(t, []string{"htl_1", "htl_2"}, service.ScheduledHotels())

	service.Unschedule("htl_1")
	assert.Equal(t, []string{"htl_2"}, service.ScheduledHotels())

	// Remover hotel sem job não é erro
	service.Unschedule("htl_404")
	assert.Equal(t, []string{"htl_2"}, service.ScheduledHotels())
}

func TestAutoRefreshService_Disabled(t *testing.T) {
	service, _, _ := newAutoRefresh(t, false)

	require.NoError(t, service.Schedule(autoHotel("htl_1")))
	assert.Empty(t, service.ScheduledHotels())

	// Start não consulta o banco quando desabilitado
	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.GetStatus()["running"].(bool))
}

func TestAutoRefreshService_refreshHotel(t *testing.T) {
	now := time.Date(2025, 5, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(refresher *schedulermocks.MockRefresher)
		validate func(t *testing.T, result refreshResult)
	}{
		{
			name: "Recomendação gerada fica registrada no status",
			setup: func(refresher *schedulermocks.MockRefresher) {
				refresher.EXPECT().
					GetRecommendation(gomock.Any(), domain.RecommendationRequest{HotelID: "htl_1"}).
					Return(&domain.PriceRecommendation{RecommendedPrice: 210.5, Confidence: 80}, nil)
			},
			validate: func(t *testing.T, result refreshResult) {
				assert.Equal(t, now, result.At)
				assert.Equal(t, 210.5, result.Price)
				assert.Equal(t, 80, result.Confidence)
				assert.Empty(t, result.Error)
			},
		},
		{
			name: "Erro fica registrado sem interromper o agendador",
			setup: func(refresher *schedulermocks.MockRefresher) {
				refresher.EXPECT().
					GetRecommendation(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("hotel not found"))
			},
			validate: func(t *testing.T, result refreshResult) {
				assert.Equal(t, "hotel not found", result.Error)
				assert.Zero(t, result.Price)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, refresher := newAutoRefresh(t, true)
			service.now = func() time.Time { return now }
			tt.setup(refresher)

			service.refreshHotel("htl_1")

			results := service.GetStatus()["last_results"].(map[string]refreshResult)
			require.Contains(t, results, "htl_1")
			tt.validate(t, results["htl_1"])
		})
	}
}

func TestAutoRefreshService_refreshHotel_SkipsWhileRunning(t *testing.T) {
	service, _, _ := newAutoRefresh(t, true)
	service.running["htl_1"] = true

	// Nenhuma chamada ao refresher é esperada
	service.refreshHotel("htl_1")

	assert.NotContains(t, service.GetStatus()["last_results"], "htl_1")
}

func TestAutoRefreshService_Start(t *testing.T) {
	service, hotelRepo, refresher := newAutoRefresh(t, true)
	hotel := autoHotel("htl_1")

	hotelRepo.EXPECT().ListAutoMode(gomock.Any()).Return([]*domain.HotelConfig{&hotel}, nil)

	refreshed := make(chan struct{}, 1)
	refresher.EXPECT().GetRecommendation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RecommendationRequest) (*domain.PriceRecommendation, error) {
			select {
			case refreshed <- struct{}{}:
			default:
			}
			return &domain.PriceRecommendation{RecommendedPrice: 200}, nil
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Equal(t, []string{"htl_1"}, service.ScheduledHotels())

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("job do hotel não executou ao iniciar o agendador")
	}

	cancel()
	assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestAutoRefreshService_Start_RepositoryError(t *testing.T) {
	service, hotelRepo, _ := newAutoRefresh(t, true)
	hotelRepo.EXPECT().ListAutoMode(gomock.Any()).Return(nil, errors.New("connection refused"))

	err := service.Start(context.Background())

	assert.Error(t, err)
	assert.Empty(t, service.ScheduledHotels())
}
