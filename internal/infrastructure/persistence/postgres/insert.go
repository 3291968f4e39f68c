// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"foundry-cms-api/internal/domain/repository"
)

// insertMissing 逐行插入，唯一约束冲突视为已存在并跳过。
// 依赖 gorm.Config.TranslateError 将方言错误翻译为 gorm.ErrDuplicatedKey。
func insertMissing[T any](db *gorm.DB, rows []*T) (*repository.InsertOutcome, error) {
	outcome := &repository.InsertOutcome{}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				outcome.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to insert row: %w", err)
		}
		outcome.Created++
	}
	return outcome, nil
}
