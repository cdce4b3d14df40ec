package parser

import (
	"github.com/ukaji3/grantbook-go/pkg/grantbook/models"
	"github.com/xuri/excelize/v2"
)

// ExtractValidations returns the data validation rules of a sheet.
func ExtractValidations(f *excelize.File, sheetName string) ([]models.Validation, error) {
	dvs, err := f.GetDataValidations(sheetName)
	if err != nil {
		return nil, err
	}
	var result []models.Validation
	for _, dv := range dvs {
		if dv == nil {
			continue
		}
		result = append(result, models.Validation{
			Sqref:       dv.Sqref,
			Type:        dv.Type,
			Source:      dv.Formula1,
			AllowBlank:  dv.AllowBlank,
			ErrorTitle:  deref(dv.ErrorTitle),
			Error:       deref(dv.Error),
			PromptTitle: deref(dv.PromptTitle),
			Prompt:      deref(dv.Prompt),
		})
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
