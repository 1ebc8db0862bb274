// Package quote 按日历日确定性地选择每日语录、副标题与问候语。
package quote

import (
	"time"

	"github.com/lifelog/internal/locale"
)

// Quote 是一条带出处的语录
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{Text: "We are what we repeatedly do. Excellence, then, is not an act, but a habit.", Author: "Will Durant"},
	{Text: "A journey of a thousand miles begins with a single step.", Author: "Lao Tzu"},
	{Text: "It does not matter how slowly you go as long as you do not stop.", Author: "Confucius"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
	{Text: "Well begun is half done.", Author: "Aristotle"},
	{Text: "Little by little, one travels far.", Author: "J. R. R. Tolkien"},
	{Text: "What you do today can improve all your tomorrows.", Author: "Ralph Marston"},
	{Text: "Motivation is what gets you started. Habit is what keeps you going.", Author: "Jim Ryun"},
	{Text: "The best time to plant a tree was twenty years ago. The second best time is now.", Author: "Proverb"},
	{Text: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle"},
	{Text: "Waste no more time arguing what a good man should be. Be one.", Author: "Marcus Aurelius"},
	{Text: "Nothing will work unless you do.", Author: "Maya Angelou"},
}

type localized struct {
	english string
	chinese string
}

var subtitles = []localized{
	{english: "Small steps, every day.", chinese: "每天一小步。"},
	{english: "Show up for yourself today.", chinese: "今天也为自己出现。"},
	{english: "Progress over perfection.", chinese: "进步胜过完美。"},
	{english: "Consistency builds the life you want.", chinese: "坚持塑造你想要的生活。"},
	{english: "One good day at a time.", chinese: "一次过好一天。"},
	{english: "Notice, reflect, grow.", chinese: "觉察，反思，成长。"},
	{english: "Be kind to your future self.", chinese: "善待未来的自己。"},
}

// All 返回全部语录的副本
func All() []Quote {
	return append([]Quote(nil), quotes...)
}

// ForDate 返回 t 所在日期的语录：第 (dayOfYear-1) % len 条
func ForDate(t time.Time) Quote {
	return quotes[indexFor(t, len(quotes))]
}

// Subtitle 按与 ForDate 相同的规则选择副标题
func Subtitle(t time.Time, lang string) string {
	s := subtitles[indexFor(t, len(subtitles))]
	return locale.Pick(lang, s.english, s.chinese)
}

// Greeting 按 t 的小时返回问候语：5-11 早上，12-16 下午，17-21 晚上，其余为深夜
func Greeting(t time.Time, lang string) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 12:
		return locale.Pick(lang, "Good morning", "早上好")
	case hour >= 12 && hour < 17:
		return locale.Pick(lang, "Good afternoon", "下午好")
	case hour >= 17 && hour < 22:
		return locale.Pick(lang, "Good evening", "晚上好")
	default:
		return locale.Pick(lang, "Good night", "夜深了")
	}
}

func indexFor(t time.Time, n int) int {
	return (t.YearDay() - 1) % n
}
