package cannolib

func CheckType(value Value, ttype ValueType) bool {
	return value.Type == ttype
}

func IsNumberType(value Value) bool {
	return CheckType(value, ValueTypeNumber)
}

func IsSequenceType(value Value) bool {
	return CheckType(value, ValueTypeList) || CheckType(value, ValueTypeTuple)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
