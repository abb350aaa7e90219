package indexvalidator

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/tablescaler/tablescaler/models"
)

//go:embed index_config.schema.json
var indexConfigSchema string

type (
	IndexValidator struct {
		schemaLoader gojsonschema.JSONLoader
	}

	IndexValidationError struct {
		gojsonschema.ResultErrorFields
	}

	ValidationErrors []models.ValidationError
)

var _ error = ValidationErrors{}

func (v ValidationErrors) Error() string {
	var errs []string
	for _, failure := range v {
		errs = append(errs, fmt.Sprintf("%s-%s", failure.Context, failure.Description))
	}
	return strings.Join(errs, ", ")
}

func NewIndexValidator() *IndexValidator {
	return &IndexValidator{
		schemaLoader: gojsonschema.NewStringLoader(indexConfigSchema),
	}
}

func newIndexValidationError(context *gojsonschema.JsonContext, formatString string, errDetails gojsonschema.ErrorDetails) *IndexValidationError {
	err := IndexValidationError{}
	err.SetType("custom_invalid_index_config_error")
	err.SetContext(context)
	err.SetDescriptionFormat(formatString)
	err.SetDetails(errDetails)
	return &err
}

// ParseAndValidate checks rawJson against the schema and the scaling config
// rules. The index from the request path is authoritative: identity fields in
// the body may be omitted but must match it when present. Omitted settings
// take their defaults.
func (v *IndexValidator) ParseAndValidate(rawJson []byte, index models.Index) (*models.IndexScalingConfig, ValidationErrors) {
	result, err := gojsonschema.Validate(v.schemaLoader, gojsonschema.NewBytesLoader(rawJson))
	if err != nil {
		return nil, rootErrors(err)
	}
	if !result.Valid() {
		return nil, getErrorsObject(result.Errors())
	}

	conf := &models.IndexScalingConfig{}
	err = json.Unmarshal(rawJson, conf)
	if err != nil {
		return nil, rootErrors(err)
	}

	validateIdentity(conf.Index, index, result)
	if len(result.Errors()) > 0 {
		return nil, getErrorsObject(result.Errors())
	}

	conf.Index = index
	validateAttributes(conf, result)
	if len(result.Errors()) > 0 {
		return nil, getErrorsObject(result.Errors())
	}

	return conf, nil
}

func validateIdentity(body models.Index, path models.Index, result *gojsonschema.Result) {
	rootContext := gojsonschema.NewJsonContext("(root)", nil)

	if body.TableName != "" && body.TableName != path.TableName {
		errDetails := gojsonschema.ErrorDetails{"table_name": body.TableName, "path": path.TableName}
		err := newIndexValidationError(gojsonschema.NewJsonContext("table_name", rootContext),
			"table_name {{.table_name}} does not match {{.path}} from the request path", errDetails)
		result.AddError(err, errDetails)
	}

	if body.GSIName != "" && body.GSIName != path.GSIName {
		errDetails := gojsonschema.ErrorDetails{"gsi_name": body.GSIName, "path": path.GSIName}
		err := newIndexValidationError(gojsonschema.NewJsonContext("gsi_name", rootContext),
			"gsi_name {{.gsi_name}} does not match {{.path}} from the request path", errDetails)
		result.AddError(err, errDetails)
	}
}

func validateAttributes(conf *models.IndexScalingConfig, result *gojsonschema.Result) {
	if err := conf.Validate(); err != nil {
		errDetails := gojsonschema.ErrorDetails{"reason": err.Error()}
		result.AddError(newIndexValidationError(gojsonschema.NewJsonContext("(root)", nil), "{{.reason}}", errDetails), errDetails)
	}
}

func rootErrors(err error) ValidationErrors {
	return ValidationErrors{{Context: "(root)", Description: err.Error()}}
}

func getErrorsObject(resultErrors []gojsonschema.ResultError) ValidationErrors {
	var errs ValidationErrors
	for _, e := range resultErrors {
		errs = append(errs, models.ValidationError{
			Context:     e.Context().String(),
			Description: e.Description(),
		})
	}
	return errs
}
