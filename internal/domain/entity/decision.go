// Package entity 定义领域实体
package entity

// SiteSize 站点规模档位
type SiteSize string

const (
	SiteSizeSmall  SiteSize = "small"
	SiteSizeMedium SiteSize = "medium"
	SiteSizeLarge  SiteSize = "large"
)

// Velocity 内容产出节奏
type Velocity string

const (
	VelocityLow    Velocity = "low"
	VelocityMedium Velocity = "medium"
	VelocityHigh   Velocity = "high"
)

// DecisionInput 决策引擎输入（不可变值对象）
type DecisionInput struct {
	SiteType        SiteType        `json:"site_type"`
	AutomationLevel AutomationLevel `json:"automation_level"`
	AmbitionLevel   AmbitionLevel   `json:"ambition_level"`
	Language        string          `json:"language"`
	Country         string          `json:"country,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// TargetRange 每类实体的数量区间
type TargetRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Midpoint 区间中点（四舍五入）
func (r TargetRange) Midpoint() int {
	// round((min+max)/2)，和为奇数时向上取整
	sum := r.Min + r.Max
	return (sum + 1) / 2
}

// Targets 各实体类型的结构化目标
type Targets struct {
	Authors      TargetRange `json:"authors"`
	Categories   TargetRange `json:"categories"`
	ContentTypes TargetRange `json:"content_types"`
	Pages        TargetRange `json:"pages"`
}

// DecisionProfile 决策引擎输出：站点的结构化画像
// 每次计算均为全新值，输入相同则输出逐字节相同（含 Rationale）。
type DecisionProfile struct {
	SiteSize   SiteSize `json:"site_size"`
	Complexity int      `json:"complexity"`
	Velocity   Velocity `json:"velocity"`
	Targets    Targets  `json:"targets"`
	// Rationale 推导轨迹，按产生顺序排列；属于正式输出而非调试信息
	Rationale []string `json:"rationale"`
}
