package entity

// Payment descriptions shown in the widget
const (
	DescriptionMonthly = "Пожертвование ВООЗ - Ежемесячное"
	DescriptionOneTime = "Пожертвование ВООЗ - Единоразовое"
)

// WidgetSettings holds the display and recurrence options of the payment widget
type WidgetSettings struct {
	PublicID          string
	Currency          string
	Language          string
	Skin              string
	RecurrentEnabled  bool
	RecurrentInterval string
	RecurrentPeriod   int
}

// RecurrentSchedule asks the widget to issue a token for repeated charges
type RecurrentSchedule struct {
	Interval string `json:"interval"`
	Period   int    `json:"period"`
}

// CloudPaymentsOptions is the processor-specific part of the widget data
type CloudPaymentsOptions struct {
	Recurrent RecurrentSchedule `json:"recurrent"`
}

// PaymentMetadata is passed through the widget and echoed back in notifications
type PaymentMetadata struct {
	Name          string                `json:"name"`
	CloudPayments *CloudPaymentsOptions `json:"CloudPayments,omitempty"`
}

// PaymentData is what the browser needs to launch the payment widget
type PaymentData struct {
	PublicID     string          `json:"publicId"`
	Amount       float64         `json:"amount"`
	Currency     string          `json:"currency"`
	InvoiceID    string          `json:"invoiceId"`
	Description  string          `json:"description"`
	AccountID    string          `json:"accountId"`
	Email        string          `json:"email"`
	Skin         string          `json:"skin"`
	Language     string          `json:"language"`
	RequireEmail bool            `json:"requireEmail"`
	Data         PaymentMetadata `json:"data"`
}

// BuildPaymentData assembles the widget descriptor for a stored donation
func BuildPaymentData(donation *Donation, invoiceID string, settings WidgetSettings) PaymentData {
	currency := settings.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	skin := settings.Skin
	if skin == "" {
		skin = "modern"
	}
	language := settings.Language
	if language == "" {
		language = "ru-RU"
	}

	description := DescriptionOneTime
	if donation.IsRecurrent() {
		description = DescriptionMonthly
	}

	data := PaymentData{
		PublicID:     settings.PublicID,
		Amount:       AmountToFloat(donation.Amount),
		Currency:     currency,
		InvoiceID:    invoiceID,
		Description:  description,
		AccountID:    donation.Email,
		Email:        donation.Email,
		Skin:         skin,
		Language:     language,
		RequireEmail: false,
		Data:         PaymentMetadata{Name: donation.DonorName},
	}

	if donation.IsRecurrent() && settings.RecurrentEnabled {
		data.Data.CloudPayments = &CloudPaymentsOptions{
			Recurrent: RecurrentSchedule{
				Interval: settings.RecurrentInterval,
				Period:   settings.RecurrentPeriod,
			},
		}
	}

	return data
}
