// Package sentiment 基于固定词典对日记文本做确定性的情绪分析。
package sentiment

import (
	"slices"
	"time"
)

// Label 是情绪分数的五档序数标签
type Label string

const (
	VeryNegative Label = "very-negative"
	Negative     Label = "negative"
	Neutral      Label = "neutral"
	Positive     Label = "positive"
	VeryPositive Label = "very-positive"
)

// Labels 按从负到正的顺序返回全部标签
func Labels() []Label {
	return []Label{VeryNegative, Negative, Neutral, Positive, VeryPositive}
}

// 分档阈值：score < -40 极负面，[-40,-10) 负面，[-10,10] 中性，(10,40] 正面，> 40 极正面
const (
	VeryNegativeBelow = -40
	NegativeBelow     = -10
	PositiveAbove     = 10
	VeryPositiveAbove = 40
)

// LabelFor 将分数映射到标签
func LabelFor(score int) Label {
	switch {
	case score < VeryNegativeBelow:
		return VeryNegative
	case score < NegativeBelow:
		return Negative
	case score <= PositiveAbove:
		return Neutral
	case score <= VeryPositiveAbove:
		return Positive
	default:
		return VeryPositive
	}
}

// Confidence 表示匹配信号的强弱
type Confidence string

const (
	Low    Confidence = "low"
	Medium Confidence = "medium"
	High   Confidence = "high"
)

// Emotion 是固定分类中的情绪标签
type Emotion string

const (
	Joy        Emotion = "joy"
	Gratitude  Emotion = "gratitude"
	Calm       Emotion = "calm"
	Pride      Emotion = "pride"
	Love       Emotion = "love"
	Hope       Emotion = "hope"
	Stress     Emotion = "stress"
	Sadness    Emotion = "sadness"
	Anxiety    Emotion = "anxiety"
	Anger      Emotion = "anger"
	Fatigue    Emotion = "fatigue"
	Loneliness Emotion = "loneliness"
)

// Emotions 返回情绪分类，结果中的情绪按此顺序排列
func Emotions() []Emotion {
	return []Emotion{Joy, Gratitude, Calm, Pride, Love, Hope, Stress, Sadness, Anxiety, Anger, Fatigue, Loneliness}
}

// Data 是一次分析的结果
type Data struct {
	Score      int        `json:"score"`
	Label      Label      `json:"label"`
	Confidence Confidence `json:"confidence"`
	Emotions   []Emotion  `json:"emotions"`
	AnalyzedAt time.Time  `json:"analyzedAt"`
}

// Equal 比较两次分析结果，忽略 AnalyzedAt
func (d Data) Equal(other Data) bool {
	return d.Score == other.Score &&
		d.Label == other.Label &&
		d.Confidence == other.Confidence &&
		slices.Equal(d.Emotions, other.Emotions)
}
