package intake

import (
	"github.com/vooz/donation-processor/internal/domain/entity"
	coreport "github.com/vooz/donation-processor/internal/domain/port/core"
	"github.com/vooz/donation-processor/internal/domain/port/notification"
	"github.com/vooz/donation-processor/internal/domain/port/persistence"
	"github.com/vooz/donation-processor/internal/domain/port/usecase"
)

// Messages shown to the donor
const (
	MsgSubmitted    = "Заявка успешно отправлена"
	MsgSubmitFailed = "Ошибка при отправке заявки. Попробуйте позже."
)

var _ usecase.IntakeUseCase = (*Service)(nil)

// Settings configures the widget descriptor and the form options
type Settings struct {
	Widget              entity.WidgetSettings
	PresetAmounts       []int
	RequireConfirmation bool
	TestMode            bool
}

// Service handles the donation form
type Service struct {
	uow          persistence.UnitOfWork
	notifier     notification.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	settings     Settings
}

// NewService creates a new intake service
func NewService(
	uow persistence.UnitOfWork,
	notifier notification.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	settings Settings,
) *Service {
	return &Service{
		uow:          uow,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		settings:     settings,
	}
}

// Options returns what the form needs to render
func (s *Service) Options() usecase.IntakeOptions {
	presets := make([]int, len(s.settings.PresetAmounts))
	copy(presets, s.settings.PresetAmounts)

	return usecase.IntakeOptions{
		PresetAmounts:       presets,
		PaymentTypes:        append([]string(nil), entity.CadenceLabels...),
		PublicID:            s.settings.Widget.PublicID,
		Currency:            s.settings.Widget.Currency,
		Language:            s.settings.Widget.Language,
		Skin:                s.settings.Widget.Skin,
		RequireConfirmation: s.settings.RequireConfirmation,
		RecurrentEnabled:    s.settings.Widget.RecurrentEnabled,
		TestMode:            s.settings.TestMode,
	}
}
