// Package hotel mantém o cadastro de hotéis, o modo automático e os perfis de comissão das OTAs
package hotel

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/revenue-optimizer-api/internal/domain"
	"github.com/vfg2006/revenue-optimizer-api/internal/usecases/pricing"
	"github.com/vfg2006/revenue-optimizer-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-optimizer-api/pkg/utils"
)

type HotelService interface {
	Create(ctx context.Context, request *domain.CreateHotelRequest) (*domain.HotelConfig, error)
	Get(ctx context.Context, id string) (*domain.HotelConfig, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.HotelConfig, error)
	Update(ctx context.Context, request *domain.UpdateHotelRequest) (*domain.HotelConfig, error)
	Delete(ctx context.Context, id string) error
	SetAutoMode(ctx context.Context, id string, enabled bool) (*domain.HotelConfig, error)
	Resolve(ctx context.Context, id string, inline *domain.HotelSettings) (domain.HotelConfig, error)
	GetOTAProfiles(ctx context.Context, id string) ([]domain.OTACommissionProfile, error)
	ReplaceOTAProfiles(ctx context.Context, id string, profiles []domain.OTACommissionProfile) ([]domain.OTACommissionProfile, error)
}

// AutoModeScheduler recebe as mudanças de modo automático dos hotéis
type AutoModeScheduler interface {
	Schedule(hotel domain.HotelConfig) error
	Unschedule(hotelID string)
}

type Service struct {
	hotelRepository repository.HotelRepository
	otaRepository   repository.OTAProfileRepository
	scheduler       AutoModeScheduler
}

func NewService(
	hotelRepository repository.HotelRepository,
	otaRepository repository.OTAProfileRepository,
) *Service {
	return &Service{
		hotelRepository: hotelRepository,
		otaRepository:   otaRepository,
	}
}

// SetScheduler conecta o agendador depois de construído, já que ele depende das recomendações
func (s *Service) SetScheduler(scheduler AutoModeScheduler) {
	s.scheduler = scheduler
}

func (s *Service) Create(ctx context.Context, request *domain.CreateHotelRequest) (*domain.HotelConfig, error) {
	if request.Name == "" || request.Location.City == "" {
		return nil, NewHotelError(ErrInvalidHotel, apiErrors.ErrMissingRequiredData, "nome e cidade são obrigatórios")
	}

	id, err := utils.GenerateID(utils.HotelIDPrefix)
	if err != nil {
		return nil, NewHotelError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para hotel")
	}

	hotel := request.Config()
	hotel.ID = id
	hotel.AutoMode = request.AutoMode
	hotel.Active = true

	if err := pricing.ValidateHotel(hotel); err != nil {
		return nil, NewHotelError(ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig, err.Error())
	}

	if err := s.hotelRepository.Create(ctx, &hotel); err != nil {
		logrus.WithError(err).WithField("hotel_name", hotel.Name).Error("Erro ao criar hotel")
		return nil, NewHotelError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar hotel no banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"hotel_id":  hotel.ID,
		"location":  hotel.Location.Key(),
		"auto_mode": hotel.AutoMode,
	}).Info("Hotel criado")

	if err := s.syncSchedule(hotel); err != nil {
		return nil, err
	}

	return &hotel, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.HotelConfig, error) {
	if id == "" {
		return nil, NewHotelError(ErrHotelIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	hotel, err := s.hotelRepository.GetByID(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("hotel_id", id).Error("Erro ao buscar hotel")
		return nil, NewHotelErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar hotel no banco de dados")
	}
	if hotel == nil {
		return nil, NewHotelErrorWithID(ErrHotelNotFound, apiErrors.ErrNotFound, id, "")
	}

	return hotel, nil
}

func (s *Service) List(ctx context.Context, onlyActive bool) ([]*domain.HotelConfig, error) {
	hotels, err := s.hotelRepository.List(ctx, onlyActive)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar hotéis")
		return nil, NewHotelError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar hotéis no banco de dados")
	}

	return hotels, nil
}

func (s *Service) Update(ctx context.Context, request *domain.UpdateHotelRequest) (*domain.HotelConfig, error) {
	hotel, err := s.Get(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	request.Apply(hotel)

	if err := pricing.ValidateHotel(*hotel); err != nil {
		return nil, NewHotelErrorWithID(ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig, hotel.ID, err.Error())
	}

	if err := s.hotelRepository.Update(ctx, hotel); err != nil {
		return nil, s.writeError(err, hotel.ID, "Falha ao atualizar hotel no banco de dados")
	}

	if err := s.syncSchedule(*hotel); err != nil {
		return nil, err
	}

	return hotel, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return NewHotelError(ErrHotelIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.hotelRepository.Delete(ctx, id); err != nil {
		return s.writeError(err, id, "Falha ao remover hotel do banco de dados")
	}

	if s.scheduler != nil {
		s.scheduler.Unschedule(id)
	}

	logrus.WithField("hotel_id", id).Info("Hotel removido")
	return nil
}

// SetAutoMode liga ou desliga a atualização automática; o agendador é avisado na mesma chamada
func (s *Service) SetAutoMode(ctx context.Context, id string, enabled bool) (*domain.HotelConfig, error) {
	hotel, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.hotelRepository.SetAutoMode(ctx, id, enabled); err != nil {
		return nil, s.writeError(err, id, "Falha ao alterar modo automático")
	}
	hotel.AutoMode = enabled

	if err := s.syncSchedule(*hotel); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"hotel_id":  id,
		"auto_mode": enabled,
	}).Info("Modo automático alterado")

	return hotel, nil
}

// Resolve devolve o hotel cadastrado quando há ID; senão valida a configuração avulsa
// preenchendo só os campos omitidos com os valores padrão
func (s *Service) Resolve(ctx context.Context, id string, inline *domain.HotelSettings) (domain.HotelConfig, error) {
	if id != "" {
		hotel, err := s.Get(ctx, id)
		if err != nil {
			return domain.HotelConfig{}, err
		}
		return *hotel, nil
	}

	if inline == nil {
		return domain.HotelConfig{}, NewHotelError(ErrHotelRequired, apiErrors.ErrMissingRequiredData, "")
	}

	hotel := inline.Config()
	if err := pricing.ValidateHotel(hotel); err != nil {
		return domain.HotelConfig{}, NewHotelError(ErrInvalidHotel, apiErrors.ErrInvalidHotelConfig, err.Error())
	}

	return hotel, nil
}

func (s *Service) GetOTAProfiles(ctx context.Context, id string) ([]domain.OTACommissionProfile, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	profiles, err := s.otaRepository.ListByHotel(ctx, id)
	if err != nil {
		logrus.WithError(err).WithField("hotel_id", id).Error("Erro ao buscar perfis de OTA")
		return nil, NewHotelErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar perfis de OTA")
	}

	return profiles, nil
}

// ReplaceOTAProfiles troca a tabela inteira de canais do hotel. Soma de participação acima
// de 100% é aceita e sinalizada no cálculo de economia.
func (s *Service) ReplaceOTAProfiles(ctx context.Context, id string, profiles []domain.OTACommissionProfile) ([]domain.OTACommissionProfile, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(profiles))
	normalized := make([]domain.OTACommissionProfile, 0, len(profiles))
	for _, profile := range profiles {
		switch {
		case profile.Channel == "":
			return nil, NewHotelErrorWithID(ErrInvalidOTAProfile, apiErrors.ErrMissingRequiredData, id, "channel é obrigatório")
		case seen[profile.Channel]:
			return nil, NewHotelErrorWithID(ErrInvalidOTAProfile, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("canal %q repetido", profile.Channel))
		case profile.CommissionRate < 0 || profile.CommissionRate > 1:
			return nil, NewHotelErrorWithID(ErrInvalidOTAProfile, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("commission_rate do canal %q fora de [0,1]", profile.Channel))
		case profile.BookingShare < 0 || profile.BookingShare > 1:
			return nil, NewHotelErrorWithID(ErrInvalidOTAProfile, apiErrors.ErrInvalidRequest, id, fmt.Sprintf("booking_share do canal %q fora de [0,1]", profile.Channel))
		}
		seen[profile.Channel] = true
		profile.HotelID = id
		normalized = append(normalized, profile)
	}

	if err := s.otaRepository.ReplaceForHotel(ctx, id, normalized); err != nil {
		logrus.WithError(err).WithField("hotel_id", id).Error("Erro ao gravar perfis de OTA")
		return nil, NewHotelErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao gravar perfis de OTA")
	}

	return normalized, nil
}

func (s *Service) syncSchedule(hotel domain.HotelConfig) error {
	if s.scheduler == nil {
		return nil
	}

	if !hotel.AutoMode || !hotel.Active {
		s.scheduler.Unschedule(hotel.ID)
		return nil
	}

	if err := s.scheduler.Schedule(hotel); err != nil {
		logrus.WithError(err).WithField("hotel_id", hotel.ID).Error("Erro ao agendar modo automático")
		return NewHotelErrorWithID(ErrScheduleAutoMode, apiErrors.ErrInternalServer, hotel.ID, err.Error())
	}

	return nil
}

func (s *Service) writeError(err error, id, details string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewHotelErrorWithID(ErrHotelNotFound, apiErrors.ErrNotFound, id, "")
	}

	logrus.WithError(err).WithField("hotel_id", id).Error(details)
	return NewHotelErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, details)
}
