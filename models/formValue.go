package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// 由表單字串解析出的整數，無法解析時序列化為null
type FormInt struct {
	Value int64
	Valid bool
}

// 由表單字串解析出的浮點數，無法解析時序列化為null
type FormFloat struct {
	Value float64
	Valid bool
}

func (i FormInt) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(i.Value, 10)), nil
}

func (f FormFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// 字串為空時回傳預設值
func Or(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// 解析字串開頭的十進位整數，例如"12abc"為12，"abc"則無效
func ParseInt(s string) FormInt {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return FormInt{}
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return FormInt{}
	}
	return FormInt{Value: n, Valid: true}
}

// 解析字串開頭的浮點數，例如"9.5kg"為9.5，無窮大與無效字串都視為無效
func ParseFloat(s string) FormFloat {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		return FormFloat{}
	}

	intDigits := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		intDigits++
	}
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		next := end + 1
		for next < len(s) && s[next] >= '0' && s[next] <= '9' {
			next++
			fracDigits++
		}
		if intDigits > 0 || fracDigits > 0 {
			end = next
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return FormFloat{}
	}

	//指數部分必須至少有一位數字才採用
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		next := end + 1
		if next < len(s) && (s[next] == '+' || s[next] == '-') {
			next++
		}
		expStart := next
		for next < len(s) && s[next] >= '0' && s[next] <= '9' {
			next++
		}
		if next > expStart {
			end = next
		}
	}

	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return FormFloat{}
	}
	return FormFloat{Value: f, Valid: true}
}
