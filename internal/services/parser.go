package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"costengine/internal/models"
	customvalidator "costengine/internal/validator"
)

// unknownTransactionID is reported when a record is too malformed for its
// transaction_id to be recovered.
const unknownTransactionID = "UNKNOWN"

// Parser turns raw transaction records into validated Transaction values.
// Records are parsed and validated one at a time so a single malformed
// record surfaces in the errored list instead of rejecting the batch.
type Parser struct {
	validate *validator.Validate
}

// NewParser creates a parser with the engine's custom validators installed.
func NewParser() *Parser {
	v := validator.New()
	customvalidator.RegisterWith(v)
	return &Parser{validate: v}
}

// Parse validates each raw record and partitions the results into
// well-formed transactions and per-record failures.
func (p *Parser) Parse(raw []json.RawMessage) ([]models.Transaction, []models.ErroredTransaction) {
	parsed := make([]models.Transaction, 0, len(raw))
	var errored []models.ErroredTransaction

	for _, record := range raw {
		txn, err := p.parseOne(record)
		if err != nil {
			errored = append(errored, models.ErroredTransaction{
				TransactionID: probeTransactionID(record),
				ErrorReason:   err.Error(),
			})
			continue
		}
		parsed = append(parsed, txn)
	}
	return parsed, errored
}

func (p *Parser) parseOne(record json.RawMessage) (models.Transaction, error) {
	var txn models.Transaction
	if err := json.Unmarshal(record, &txn); err != nil {
		return models.Transaction{}, fmt.Errorf("Validation error: %s", unmarshalReason(err))
	}

	if err := p.validate.Struct(&txn); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			reasons := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				reasons = append(reasons, fmt.Sprintf("%s: failed '%s' validation", fe.Field(), fe.Tag()))
			}
			return models.Transaction{}, fmt.Errorf("Validation error: %s", strings.Join(reasons, "; "))
		}
		return models.Transaction{}, fmt.Errorf("Validation error: %s", err.Error())
	}
	return txn, nil
}

// probeTransactionID extracts transaction_id from a record that failed
// full parsing, for error reporting.
func probeTransactionID(record json.RawMessage) string {
	var probe struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := json.Unmarshal(record, &probe); err != nil || probe.TransactionID == "" {
		return unknownTransactionID
	}
	return probe.TransactionID
}

// unmarshalReason strips the "json: " prefix Go puts on decode errors so
// clients see a cleaner message.
func unmarshalReason(err error) string {
	return strings.TrimPrefix(err.Error(), "json: ")
}
