package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// 开球时间原文形如 "Sun, September 7th at 4:05 PM EDT"，上游是自由文本，
// 解析失败一律返回"排最后"的哨兵值，排序必须保持全序

var kickoffRe = regexp.MustCompile(`^\s*\w{3},\s*([A-Za-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?\s+at\s+(\d{1,2}):(\d{2})\s*(AM|PM)\s*([A-Z]{2,3})?\s*$`)

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

// NFL转播表常见的美国时区缩写 → UTC偏移小时数
var tzOffsetsHours = map[string]int{
	"EDT": -4, "EST": -5,
	"CDT": -5, "CST": -6,
	"MDT": -6, "MST": -7,
	"PDT": -7, "PST": -8,
}

// parseKickoffUTC 解析开球时间原文为UTC时刻。year<=0或任何解析失败返回ok=false
func parseKickoffUTC(timeDisplay string, year int) (time.Time, bool) {
	if timeDisplay == "" || year <= 0 {
		return time.Time{}, false
	}

	m := kickoffRe.FindStringSubmatch(timeDisplay)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := months[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(m[3])
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(m[4])
	if err != nil {
		return time.Time{}, false
	}

	// 12小时制 → 24小时制
	switch m[5] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	// 归一化时区别名："ET"按"EST"处理（排序用途的近似）
	tz := strings.ToUpper(m[6])
	switch tz {
	case "ET":
		tz = "EST"
	case "PT":
		tz = "PST"
	case "CT":
		tz = "CST"
	case "MT":
		tz = "MST"
	}

	// 未知或缺失的时区按偏移0处理：这是既有的已知近似，不要"修正"
	offset := tzOffsetsHours[tz]

	// 本地时间 → UTC：UTC = local - offsetHours（time.Date会自行进位）
	return time.Date(year, month, day, hour-offset, minute, 0, 0, time.UTC), true
}

// kickoffSortKey 排序键：UTC毫秒时间戳，不可解析为+Inf（所有坏值彼此相等且排最后）
func kickoffSortKey(timeDisplay string, year int) float64 {
	t, ok := parseKickoffUTC(timeDisplay, year)
	if !ok {
		return math.Inf(1)
	}
	return float64(t.UnixMilli())
}

var eveningTimeRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*pm`)
var clockTimeRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// isConfirmedSlot 判断是否已确认的焦点时段：周四/周五/周一/周六比赛无条件确认；
// 周日仅晚上7点（含）之后确认，其余落入TBD
func isConfirmedSlot(timeDisplay string) bool {
	lower := strings.ToLower(timeDisplay)
	if strings.Contains(lower, "thu") || strings.Contains(lower, "fri") ||
		strings.Contains(lower, "mon") || strings.Contains(lower, "sat") {
		return true
	}

	if strings.Contains(lower, "sun") {
		if m := eveningTimeRe.FindStringSubmatch(timeDisplay); m != nil {
			if hour, err := strconv.Atoi(m[1]); err == nil && hour >= 7 {
				return true
			}
		}
	}
	return false
}

// timeSlotContext 推导时段上下文，用于分组键与本地队规则的同窗口判定。
// 统一采用工作日优先的口径：周日可解析时间再分 Sunday Night/Late/Early，
// 解析不出时间退化为 "Sunday"，其余未知情况退化为 "Games"
func timeSlotContext(timeDisplay string) string {
	lower := strings.ToLower(timeDisplay)
	if strings.Contains(lower, "thu") {
		return "Thursday Night"
	}
	if strings.Contains(lower, "fri") {
		return "Friday Night"
	}
	if strings.Contains(lower, "mon") {
		return "Monday Night"
	}
	if strings.Contains(lower, "sat") {
		return "Saturday"
	}

	if strings.Contains(lower, "sun") {
		if m := clockTimeRe.FindStringSubmatch(timeDisplay); m != nil {
			hour, _ := strconv.Atoi(m[1])
			ampm := strings.ToUpper(m[3])
			hour24 := hour
			if ampm == "PM" && hour != 12 {
				hour24 += 12
			}
			if ampm == "AM" && hour == 12 {
				hour24 = 0
			}
			if hour24 >= 19 {
				return "Sunday Night"
			}
			if hour24 >= 16 {
				return "Late"
			}
			return "Early"
		}
		return "Sunday"
	}

	return "Games"
}
