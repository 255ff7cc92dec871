package entities

import "bikeshare/utils"

// Schema describes a loaded city dataset
// + City: city which belongs the data
// + Columns: column names found in the header of the source file
// + GenderColumn: name of the gender column, empty if the city does not track it
// + BirthYearColumn: name of the birth year column, empty if the city does not track it
type Schema struct {
	City            string   `json:"city"`
	Columns         []string `json:"columns"`
	GenderColumn    string   `json:"gender_column"`
	BirthYearColumn string   `json:"birth_year_column"`
}

func NewSchema(city string, columns []string, genderColumn string, birthYearColumn string) Schema {
	return Schema{
		City:            city,
		Columns:         columns,
		GenderColumn:    genderColumn,
		BirthYearColumn: birthYearColumn,
	}
}

func (s Schema) GetCity() string {
	return s.City
}

func (s Schema) HasColumn(column string) bool {
	return utils.ContainsString(column, s.Columns)
}

// HasGender returns true if the source carries gender data
func (s Schema) HasGender() bool {
	return s.GenderColumn != "" && s.HasColumn(s.GenderColumn)
}

// HasBirthYear returns true if the source carries birth year data
func (s Schema) HasBirthYear() bool {
	return s.BirthYearColumn != "" && s.HasColumn(s.BirthYearColumn)
}
