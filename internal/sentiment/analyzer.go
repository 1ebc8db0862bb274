package sentiment

import (
	"math"
	"strings"
	"time"
	"unicode"
)

const (
	// MaxAnalyzedRunes 之后的文本不参与分析
	MaxAnalyzedRunes = 20000
	// saturation 控制原始分数映射到 [-100,100] 的曲线陡峭程度
	saturation = 8.0
	// negationWindow 为否定词影响的后续 token 数
	negationWindow   = 3
	negationDamping  = 0.8
	intensifierBoost = 1.5

	// 命中数占 token 数的比例阈值
	highDensity   = 0.15
	mediumDensity = 0.08
)

// Analyzer 绑定时钟，仅用于给结果打 AnalyzedAt
type Analyzer struct {
	now func() time.Time
}

// NewAnalyzer 构造 Analyzer，clock 为空时使用 time.Now
func NewAnalyzer(clock func() time.Time) *Analyzer {
	if clock == nil {
		clock = time.Now
	}
	return &Analyzer{now: clock}
}

// Analyze 分析文本
func (a *Analyzer) Analyze(text string) Data {
	return Analyze(text, a.now())
}

// Analyze 对文本做确定性分析；除 AnalyzedAt 外结果只取决于文本内容。
// 任何输入都返回完整的结果，空文本为 neutral/low 且无情绪。
func Analyze(text string, analyzedAt time.Time) Data {
	lowered := strings.ToLower(truncateRunes(text, MaxAnalyzedRunes))
	tokens := tokenize(lowered)

	var acc accumulator
	acc.scanTokens(tokens)
	acc.scanCJK(lowered)

	score := normalize(acc.raw)
	return Data{
		Score:      score,
		Label:      LabelFor(score),
		Confidence: acc.confidence(len(tokens)),
		Emotions:   acc.emotionList(),
		AnalyzedAt: analyzedAt,
	}
}

type accumulator struct {
	raw     float64
	matches int
	strong  bool
	seen    map[Emotion]struct{}
}

func (a *accumulator) add(t term, boost float64, negated bool) {
	weight := t.weight * boost
	if negated {
		weight = -weight * negationDamping
	}
	a.raw += weight
	a.matches++
	if negated {
		return
	}
	if math.Abs(t.weight) >= strongWeight {
		a.strong = true
	}
	if t.emotion != "" {
		if a.seen == nil {
			a.seen = make(map[Emotion]struct{})
		}
		a.seen[t.emotion] = struct{}{}
	}
}

func (a *accumulator) scanTokens(tokens []string) {
	negateLeft := 0
	boost := 1.0
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if _, ok := negators[tok]; ok {
			negateLeft = negationWindow
			i++
			continue
		}
		if _, ok := intensifiers[tok]; ok {
			boost = intensifierBoost
			i++
			continue
		}

		t, width, ok := match(tokens, i)
		if !ok {
			if negateLeft > 0 {
				negateLeft--
			}
			boost = 1.0
			i++
			continue
		}

		a.add(t, boost, negateLeft > 0)
		negateLeft = 0
		boost = 1.0
		i += width
	}
}

func (a *accumulator) scanCJK(text string) {
	for _, entry := range cjkLexicon {
		offset := 0
		for {
			idx := strings.Index(text[offset:], entry.phrase)
			if idx < 0 {
				break
			}
			pos := offset + idx
			prefix := text[:pos]
			negated := strings.HasSuffix(prefix, "不") || strings.HasSuffix(prefix, "没")
			a.add(entry.term, 1.0, negated)
			offset = pos + len(entry.phrase)
		}
	}
}

func (a *accumulator) confidence(tokenCount int) Confidence {
	if a.matches == 0 {
		return Low
	}
	density := float64(a.matches) / float64(max(tokenCount, 1))
	switch {
	case a.strong, a.matches >= 3 && density >= highDensity:
		return High
	case a.matches >= 2, density >= mediumDensity:
		return Medium
	default:
		return Low
	}
}

func (a *accumulator) emotionList() []Emotion {
	result := make([]Emotion, 0, len(a.seen))
	for _, emotion := range Emotions() {
		if _, ok := a.seen[emotion]; ok {
			result = append(result, emotion)
		}
	}
	return result
}

// match 从 tokens[i] 开始优先匹配最长的短语
func match(tokens []string, i int) (term, int, bool) {
	for width := 3; width >= 1; width-- {
		if i+width > len(tokens) {
			continue
		}
		key := tokens[i]
		if width > 1 {
			key = strings.Join(tokens[i:i+width], " ")
		}
		if t, ok := lexicon[key]; ok {
			return t, width, true
		}
		if width == 1 {
			if r := []rune(key); len(r) == 1 {
				if t, ok := emojiLexicon[r[0]]; ok {
					return t, 1, true
				}
			}
		}
	}
	return term{}, 0, false
}

// tokenize 将文本切分为字母数字串；汉字与表情各自成为独立 token，撇号被忽略
func tokenize(text string) []string {
	var tokens []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.Is(unicode.Han, r):
			flush()
			tokens = append(tokens, string(r))
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current.WriteRune(r)
		default:
			flush()
			if _, ok := emojiLexicon[r]; ok {
				tokens = append(tokens, string(r))
			}
		}
	}
	flush()
	return tokens
}

func normalize(raw float64) int {
	if raw == 0 {
		return 0
	}
	score := int(math.Round(100 * raw / (math.Abs(raw) + saturation)))
	return min(100, max(-100, score))
}

func truncateRunes(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	count := 0
	for idx := range text {
		if count == limit {
			return text[:idx]
		}
		count++
	}
	return text
}
