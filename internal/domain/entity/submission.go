package entity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// MaxCommentLength is the comment limit in characters
const MaxCommentLength = 1500

// Validation messages shown next to form fields
const (
	MsgAmountRequired     = "Сумма обязательна"
	MsgAmountNotNumber    = "Сумма должна быть числом"
	MsgAmountNotPositive  = "Сумма должна быть больше 0"
	MsgPaymentTypeMissing = "Выберите тип платежа"
	MsgPaymentTypeInvalid = "Неверный тип платежа"
	MsgNameRequired       = "Имя обязательно"
	MsgNameInvalid        = "Имя может содержать только буквы, пробелы и тире"
	MsgEmailRequired      = "Email обязателен"
	MsgEmailNoAt          = "Email должен содержать символ @"
	MsgEmailInvalid       = "Некорректный email"
	MsgCommentTooLong     = "Максимум 1500 символов"
)

var (
	donorNamePattern = regexp.MustCompile(`^[\p{L}\s\-]+$`)
	fieldValidator   = validator.New()
)

// DonationSubmission is the donation form as posted by the browser
type DonationSubmission struct {
	Amount      string
	PaymentType string
	DonorName   string
	Email       string
	Comment     string
}

// ValidationErrors maps form field names to their error message
type ValidationErrors map[string]string

// Validate checks every field and reports all failures at once
func (s DonationSubmission) Validate() ValidationErrors {
	errors := ValidationErrors{}

	if msg := s.validateAmount(); msg != "" {
		errors["amount"] = msg
	}

	paymentType := strings.TrimSpace(s.PaymentType)
	switch {
	case paymentType == "":
		errors["paymentType"] = MsgPaymentTypeMissing
	case s.PaymentType != CadenceLabelOneTime && s.PaymentType != CadenceLabelMonthly:
		errors["paymentType"] = MsgPaymentTypeInvalid
	}

	switch {
	case strings.TrimSpace(s.DonorName) == "":
		errors["donorName"] = MsgNameRequired
	case !donorNamePattern.MatchString(s.DonorName):
		errors["donorName"] = MsgNameInvalid
	}

	switch {
	case strings.TrimSpace(s.Email) == "":
		errors["email"] = MsgEmailRequired
	case !strings.Contains(s.Email, "@"):
		errors["email"] = MsgEmailNoAt
	case fieldValidator.Var(s.Email, "email") != nil:
		errors["email"] = MsgEmailInvalid
	}

	if utf8.RuneCountInString(s.Comment) > MaxCommentLength {
		errors["comment"] = MsgCommentTooLong
	}

	return errors
}

// IsValid reports whether the submission has no field errors
func (s DonationSubmission) IsValid() bool {
	return len(s.Validate()) == 0
}

// ParsedAmount returns the amount rounded to kopecks
func (s DonationSubmission) ParsedAmount() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s.Amount))
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Round(MaxDecimalPlaces), nil
}

func (s DonationSubmission) validateAmount() string {
	if strings.TrimSpace(s.Amount) == "" {
		return MsgAmountRequired
	}

	amount, err := s.ParsedAmount()
	if err != nil {
		return MsgAmountNotNumber
	}
	if !amount.IsPositive() {
		return MsgAmountNotPositive
	}
	return ""
}
