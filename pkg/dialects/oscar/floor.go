package oscar

import (
	"fmt"

	"github.com/leapstack-labs/sqlshim/pkg/core"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
)

// floorFormats maps a truncation unit to the DATE_FORMAT pattern that zeroes
// every field below it.
var floorFormats = map[core.TimeUnitRange]string{
	core.RangeYear:   "%Y-01-01",
	core.RangeMonth:  "%Y-%m-01",
	core.RangeDay:    "%Y-%m-%d",
	core.RangeHour:   "%Y-%m-%d %H:00:00",
	core.RangeMinute: "%Y-%m-%d %H:%i:00",
	core.RangeSecond: "%Y-%m-%d %H:%i:%s",
}

// Week truncation goes through the ISO year/week pair: format as
// "<year><week>-1" (Monday) and parse it back.
const (
	weekFormat = "%x%v-1"
	weekParse  = "%x%v-%w"
)

func (d *Dialect) unparseFloor(w dialect.Writer, call *core.CallExpr) error {
	unit, ok := call.Operand(1).(*core.TimeUnitLiteral)
	if !ok {
		return fmt.Errorf("oscar: FLOOR expects a time unit, got %T", call.Operand(1))
	}

	if unit.Range == core.RangeWeek {
		w.Keyword("STR_TO_DATE")
		outer := w.StartList("(", ")")
		if err := d.writeDateFormat(w, call.Operand(0), weekFormat); err != nil {
			return err
		}
		w.Sep(",")
		w.Literal(weekParse)
		w.EndList(outer)
		return nil
	}

	format, ok := floorFormats[unit.Range]
	if !ok {
		return dialect.Unsupported(d.Name(), "FLOOR time unit", unit.Range.String())
	}
	return d.writeDateFormat(w, call.Operand(0), format)
}

// writeDateFormat writes DATE_FORMAT(<value>, '<format>').
func (d *Dialect) writeDateFormat(w dialect.Writer, value core.Expr, format string) error {
	w.Keyword("DATE_FORMAT")
	frame := w.StartList("(", ")")
	if err := w.Expr(value, dialect.PrecedenceNone, dialect.PrecedenceNone); err != nil {
		return err
	}
	w.Sep(",")
	w.Literal(format)
	w.EndList(frame)
	return nil
}
