// Package threshold parses range expressions and evaluates measured values
// against warning and critical ranges.
//
// # Range Expressions
//
// A range is written as [@]start:end. Both bounds are inclusive.
//
//	10        alert if the value is < 0 or > 10
//	10:       alert if the value is < 10
//	~:10      alert if the value is > 10 (start is negative infinity)
//	10:20     alert if the value is < 10 or > 20
//	@10:20    alert if the value is >= 10 and <= 20
//
// Numbers are read with C-style prefix semantics, so "1:12%" is the range
// 1 to 12. An empty end, as in "10:", means positive infinity.
//
// # Classification
//
//	th, err := threshold.New("80", "90")
//	if err != nil {
//	    return err
//	}
//	level := th.Classify(95) // status.Critical
//
// Critical is always evaluated before warning, so a value matching both
// ranges is reported as Critical.
package threshold
