// Package messaging 提供消息队列实现
package messaging

import (
	"encoding/json"
	"time"
)

// Message 消息结构
type Message struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	SiteID    string            `json:"site_id"`
	Payload   json.RawMessage   `json:"payload"`
	Metadata  map[string]string `json:"metadata"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewMessage 创建新消息
func NewMessage(id, msgType, siteID string, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		ID:        id,
		Type:      msgType,
		SiteID:    siteID,
		Payload:   payloadBytes,
		Metadata:  make(map[string]string),
		CreatedAt: time.Now(),
	}, nil
}

// SetMetadata 设置元数据
func (m *Message) SetMetadata(key, value string) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]string)
	}
	m.Metadata[key] = value
}

// UnmarshalPayload 解析消息载荷
func (m *Message) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// Stream 流定义
type Stream string

const (
	// StreamSetupAudit 站点初始化审计事件流
	StreamSetupAudit Stream = "stream:setup:audit"
)

// SetupAppliedMessage 初始化应用事件载荷
type SetupAppliedMessage struct {
	SiteID      string `json:"site_id"`
	Kind        string `json:"kind"`
	BlueprintID string `json:"blueprint_id"`
	Version     int    `json:"version"`
	Created     int    `json:"created"`
	Skipped     int    `json:"skipped"`
}

// BlueprintSavedMessage 蓝图落盘事件载荷
type BlueprintSavedMessage struct {
	SiteID      string `json:"site_id"`
	BlueprintID string `json:"blueprint_id"`
	Version     int    `json:"version"`
}
