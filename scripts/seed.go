// 手动填充演示数据脚本
//
// 仅用于本地开发：创建演示账号、示例分类和题目，方便前端联调。
// 重复执行是安全的，已存在的记录会被跳过。
//
// 用法: go run scripts/seed.go

package main

import (
	"errors"
	"log"
	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/pkg/database"
	"quiz_arena_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	creator := seedUser(db, "Demo Creator", "creator@example.com", model.Creator)
	seedUser(db, "Demo Player", "player@example.com", model.Player)

	science := seedCategory(db, "Science", "General science questions")
	seedCategory(db, "History", "World history questions")

	seedQuestion(db, creator.ID, science.ID, "Which planet is known as the Red Planet?", []model.Choice{
		{Content: "Mars", IsCorrect: true},
		{Content: "Venus"},
		{Content: "Jupiter"},
	})
	seedQuestion(db, creator.ID, science.ID, "What gas do plants absorb from the atmosphere?", []model.Choice{
		{Content: "Carbon dioxide", IsCorrect: true},
		{Content: "Oxygen"},
		{Content: "Nitrogen"},
	})

	log.Println("完成！")
}

func seedUser(db *gorm.DB, name, email string, role model.UserRole) *model.User {
	var user model.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询用户失败: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("生成密码失败: %v", err)
	}
	user = model.User{Name: name, Email: email, Password: string(hash), Role: role}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("创建用户失败: %v", err)
	}
	log.Printf("创建用户 %s (%s)", email, role)
	return &user
}

func seedCategory(db *gorm.DB, name, description string) *model.Category {
	var category model.Category
	err := db.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("查询分类失败: %v", err)
	}

	category = model.Category{Name: name, Description: description}
	if err := db.Create(&category).Error; err != nil {
		log.Fatalf("创建分类失败: %v", err)
	}
	log.Printf("创建分类 %s", name)
	return &category
}

func seedQuestion(db *gorm.DB, creatorID, categoryID uint, content string, choices []model.Choice) {
	var count int64
	db.Model(&model.Question{}).Where("content = ?", content).Count(&count)
	if count > 0 {
		return
	}

	question := model.Question{
		Content:    content,
		CategoryID: categoryID,
		CreatorID:  creatorID,
		Difficulty: model.Easy,
		Choices:    choices,
	}
	if err := db.Create(&question).Error; err != nil {
		log.Fatalf("创建题目失败: %v", err)
	}
	log.Printf("创建题目 %q", content)
}
