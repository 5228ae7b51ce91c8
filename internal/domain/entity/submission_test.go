package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSubmission() DonationSubmission {
	return DonationSubmission{
		Amount:      "1000",
		PaymentType: CadenceLabelOneTime,
		DonorName:   "Anna",
		Email:       "a@b.com",
	}
}

func TestDonationSubmissionValidate(t *testing.T) {
	t.Run("Valid submission", func(t *testing.T) {
		errors := validSubmission().Validate()
		assert.Empty(t, errors)
		assert.True(t, validSubmission().IsValid())
	})

	t.Run("Field rules", func(t *testing.T) {
		testCases := []struct {
			name     string
			mutate   func(s *DonationSubmission)
			field    string
			expected string
		}{
			{"Empty amount", func(s *DonationSubmission) { s.Amount = "  " }, "amount", MsgAmountRequired},
			{"Non-numeric amount", func(s *DonationSubmission) { s.Amount = "много" }, "amount", MsgAmountNotNumber},
			{"Zero amount", func(s *DonationSubmission) { s.Amount = "0" }, "amount", MsgAmountNotPositive},
			{"Negative amount", func(s *DonationSubmission) { s.Amount = "-5" }, "amount", MsgAmountNotPositive},
			{"Sub-kopeck amount", func(s *DonationSubmission) { s.Amount = "0.001" }, "amount", MsgAmountNotPositive},
			{"Missing payment type", func(s *DonationSubmission) { s.PaymentType = "" }, "paymentType", MsgPaymentTypeMissing},
			{"Unknown payment type", func(s *DonationSubmission) { s.PaymentType = "one_time" }, "paymentType", MsgPaymentTypeInvalid},
			{"Missing name", func(s *DonationSubmission) { s.DonorName = " " }, "donorName", MsgNameRequired},
			{"Digits in name", func(s *DonationSubmission) { s.DonorName = "123" }, "donorName", MsgNameInvalid},
			{"Punctuation in name", func(s *DonationSubmission) { s.DonorName = "Anna!" }, "donorName", MsgNameInvalid},
			{"Missing email", func(s *DonationSubmission) { s.Email = "" }, "email", MsgEmailRequired},
			{"Email without at sign", func(s *DonationSubmission) { s.Email = "anna.example.com" }, "email", MsgEmailNoAt},
			{"Malformed email", func(s *DonationSubmission) { s.Email = "anna@@example.com" }, "email", MsgEmailInvalid},
			{"Long comment", func(s *DonationSubmission) { s.Comment = strings.Repeat("a", MaxCommentLength+1) }, "comment", MsgCommentTooLong},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				submission := validSubmission()
				tc.mutate(&submission)

				errors := submission.Validate()

				assert.Len(t, errors, 1)
				assert.Equal(t, tc.expected, errors[tc.field])
			})
		}
	})

	t.Run("Reports every failing field", func(t *testing.T) {
		submission := validSubmission()
		submission.Amount = "-5"
		submission.DonorName = "123"

		errors := submission.Validate()

		assert.Len(t, errors, 2)
		assert.Contains(t, errors, "amount")
		assert.Contains(t, errors, "donorName")
	})

	t.Run("Unicode names and comment length in characters", func(t *testing.T) {
		submission := validSubmission()
		submission.DonorName = "Анна-Мария Ёлкина"
		submission.Comment = strings.Repeat("я", MaxCommentLength)

		assert.Empty(t, submission.Validate())
	})
}
