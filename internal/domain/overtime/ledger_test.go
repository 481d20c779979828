package overtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryValidate(t *testing.T) {
	classID := uint(4)

	valid := Entry{UserID: 1, FiscalYear: 2026, ClassificationID: &classID, HoursWorked: 8, HoursDeclined: 16}
	assert.NoError(t, valid.Validate())

	general := Entry{UserID: 1, FiscalYear: 2026}
	assert.NoError(t, general.Validate())

	assert.Error(t, (&Entry{FiscalYear: 2026}).Validate())
	assert.Error(t, (&Entry{UserID: 1, FiscalYear: 12}).Validate())
	assert.Error(t, (&Entry{UserID: 1, FiscalYear: 2026, HoursWorked: -1}).Validate())
	assert.Error(t, (&Entry{UserID: 1, FiscalYear: 2026, HoursDeclined: -0.5}).Validate())
}
