package record

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// Profile 保存用户偏好，持久化时缺失字段回退到 DefaultProfile
// AreaGoals 为每个生活领域每周的目标打卡次数
type Profile struct {
	Name                 string           `json:"name"`
	Language             string           `json:"language"`
	Theme                string           `json:"theme"`
	NotificationsEnabled bool             `json:"notificationsEnabled"`
	MonthlyBudget        *decimal.Decimal `json:"monthlyBudget,omitempty"`
	AreaGoals            map[LifeArea]int `json:"areaGoals"`
	Onboarded            bool             `json:"onboarded"`
}

// DefaultProfile 返回默认偏好
func DefaultProfile() Profile {
	return Profile{
		Language:  "en",
		Theme:     "system",
		AreaGoals: map[LifeArea]int{},
	}
}

// Clone 返回不共享 map 的副本
func (p Profile) Clone() Profile {
	clone := p
	clone.AreaGoals = maps.Clone(p.AreaGoals)
	if clone.AreaGoals == nil {
		clone.AreaGoals = map[LifeArea]int{}
	}
	return clone
}

// EncodeProfile 序列化偏好
func EncodeProfile(p Profile) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeProfile 将持久化内容合并到默认偏好之上；损坏时返回默认偏好
func DecodeProfile(raw string) (Profile, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return DefaultProfile(), nil
	}

	profile := DefaultProfile()
	if err := json.Unmarshal([]byte(trimmed), &profile); err != nil {
		return DefaultProfile(), &DecodeError{Bucket: BucketProfile, Corrupt: true, Err: err}
	}

	if strings.TrimSpace(profile.Language) == "" {
		profile.Language = DefaultProfile().Language
	}
	if strings.TrimSpace(profile.Theme) == "" {
		profile.Theme = DefaultProfile().Theme
	}
	goals := make(map[LifeArea]int, len(profile.AreaGoals))
	for area, target := range profile.AreaGoals {
		if normalized, ok := ParseLifeArea(string(area)); ok && target > 0 {
			goals[normalized] = target
		}
	}
	profile.AreaGoals = goals
	return profile, nil
}
