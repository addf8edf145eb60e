package core

import "strings"

// TypeName is a scalar SQL type category.
type TypeName int

// TypeName constants. TypeOther collects every type without its own category.
const (
	TypeOther TypeName = iota
	TypeBoolean
	TypeTinyInt
	TypeSmallInt
	TypeInteger
	TypeBigInt
	TypeDecimal
	TypeFloat
	TypeReal
	TypeDouble
	TypeChar
	TypeVarchar
	TypeBinary
	TypeVarbinary
	TypeDate
	TypeTime
	TypeTimestamp
	TypeIntervalYearMonth
	TypeIntervalDayTime
)

var typeNames = map[TypeName]string{
	TypeOther:             "OTHER",
	TypeBoolean:           "BOOLEAN",
	TypeTinyInt:           "TINYINT",
	TypeSmallInt:          "SMALLINT",
	TypeInteger:           "INTEGER",
	TypeBigInt:            "BIGINT",
	TypeDecimal:           "DECIMAL",
	TypeFloat:             "FLOAT",
	TypeReal:              "REAL",
	TypeDouble:            "DOUBLE",
	TypeChar:              "CHAR",
	TypeVarchar:           "VARCHAR",
	TypeBinary:            "BINARY",
	TypeVarbinary:         "VARBINARY",
	TypeDate:              "DATE",
	TypeTime:              "TIME",
	TypeTimestamp:         "TIMESTAMP",
	TypeIntervalYearMonth: "INTERVAL_YEAR_MONTH",
	TypeIntervalDayTime:   "INTERVAL_DAY_TIME",
}

// String returns the SQL spelling of the type category.
func (t TypeName) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "OTHER"
}

// AllTypeNames returns every type category in declaration order.
func AllTypeNames() []TypeName {
	names := make([]TypeName, 0, len(typeNames))
	for t := TypeOther; t <= TypeIntervalDayTime; t++ {
		names = append(names, t)
	}
	return names
}

// ParseTypeName maps a SQL type keyword to its category.
// Unknown names map to TypeOther and false.
func ParseTypeName(s string) (TypeName, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch upper {
	case "INT":
		return TypeInteger, true
	case "NUMERIC":
		return TypeDecimal, true
	case "CHARACTER":
		return TypeChar, true
	}
	for t, name := range typeNames {
		if t != TypeOther && name == upper {
			return t, true
		}
	}
	return TypeOther, false
}

// HasCharSet reports whether values of this category may carry a character set.
func (t TypeName) HasCharSet() bool {
	return t == TypeChar || t == TypeVarchar
}

// DataType is a concrete type reference, e.g. VARCHAR(20) CHARACTER SET utf8.
type DataType struct {
	Name      TypeName
	Precision int // PrecisionUnspecified when absent
	Scale     int // PrecisionUnspecified when absent
	CharSet   string
}

// NewDataType returns a data type with no precision, scale or charset.
func NewDataType(name TypeName) *DataType {
	return &DataType{Name: name, Precision: PrecisionUnspecified, Scale: PrecisionUnspecified}
}
