package categorizer

import (
	"fjacquet/fincat/internal/logging"
	"fjacquet/fincat/internal/models"
	"fjacquet/fincat/internal/store"
)

// RecordFeedback turns a user's manual re-categorization into a new
// rule: the transaction's raw details text becomes a keyword of the
// chosen category. Learned keywords are therefore whole phrases, and
// any future transaction whose normalized details contain that phrase
// classifies into the chosen category on the next run.
func (c *Categorizer) RecordFeedback(tx models.Transaction, chosenCategory string) (store.Status, error) {
	status, err := c.store.AddKeyword(chosenCategory, tx.Details)
	if err != nil {
		c.logger.WithError(err).Error("Failed to record categorization feedback")
		return status, err
	}

	c.logger.Info("Recorded categorization feedback",
		logging.Field{Key: logging.FieldCategory, Value: chosenCategory},
		logging.Field{Key: logging.FieldKeyword, Value: tx.Details},
		logging.Field{Key: logging.FieldStatus, Value: string(status)})
	return status, nil
}
