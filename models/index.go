package models

import "fmt"

// Index identifies a table's primary index, or one of its global secondary
// indexes when GSIName is set. It is comparable and used directly as a map key.
type Index struct {
	TableName string `yaml:"table_name" json:"table_name"`
	GSIName   string `yaml:"gsi_name,omitempty" json:"gsi_name,omitempty"`
}

func NewIndex(tableName string, gsiName string) Index {
	return Index{TableName: tableName, GSIName: gsiName}
}

func (i Index) IsGSI() bool {
	return i.GSIName != ""
}

func (i Index) String() string {
	if i.IsGSI() {
		return fmt.Sprintf("%s:%s", i.TableName, i.GSIName)
	}
	return i.TableName
}
