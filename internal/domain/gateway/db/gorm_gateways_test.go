package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
)

func getDB(assert *assert.Assertions) *gorm.DB {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.Nil(err)

	sqlDB, err := conn.DB()
	assert.Nil(err)
	// a single connection keeps the in-memory database alive and the
	// foreign_keys pragma effective for every statement
	sqlDB.SetMaxOpenConns(1)
	assert.Nil(conn.Exec("PRAGMA foreign_keys = ON").Error)

	assert.Nil(conn.SetupJoinTable(&entity.Todo{}, "Categories", &entity.TodoCategory{}))
	assert.Nil(conn.AutoMigrate(&entity.User{}, &entity.Category{}, &entity.Todo{}, &entity.Comment{}))

	return conn
}

func addTodo(assert *assert.Assertions, gateway *db.GormTodoGateway, title string, categoryIDs []uint) *entity.Todo {
	todo := entity.Todo{Title: title}
	assert.Nil(gateway.Create(context.Background(), &todo, categoryIDs))

	return &todo
}

func addCategory(assert *assert.Assertions, gateway *db.GormCategoryGateway, name string) *entity.Category {
	category := entity.Category{Name: name}
	assert.Nil(gateway.Create(context.Background(), &category))

	return &category
}

func countRows(assert *assert.Assertions, conn *gorm.DB, value any) int64 {
	var count int64
	assert.Nil(conn.Model(value).Count(&count).Error)

	return count
}

func TestCategoryNameUnique(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormCategoryGateway(conn)

	addCategory(assert, gateway, "work")

	err := gateway.Create(context.Background(), &entity.Category{Name: "work"})
	assert.NotNil(err)
	assert.True(errors.Is(err, model.ErrConstraintViolation))
	assert.EqualValues(1, countRows(assert, conn, &entity.Category{}))
}

func TestCategoryUpdateDuplicateName(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormCategoryGateway(conn)

	addCategory(assert, gateway, "work")
	other := addCategory(assert, gateway, "home")

	other.Name = "work"
	err := gateway.Update(context.Background(), other)
	assert.True(errors.Is(err, model.ErrConstraintViolation))
}

func TestListCategoriesOrderedByName(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormCategoryGateway(conn)

	for _, name := range []string{"errands", "admin", "deep work"} {
		addCategory(assert, gateway, name)
	}

	categories, err := gateway.FindAll(context.Background())
	assert.Nil(err)
	assert.Len(categories, 3)
	assert.Equal("admin", categories[0].Name)
	assert.Equal("deep work", categories[1].Name)
	assert.Equal("errands", categories[2].Name)
}

func TestListTodosOrderedByIDDescending(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormTodoGateway(conn)

	first := addTodo(assert, gateway, "first", nil)
	second := addTodo(assert, gateway, "second", nil)
	third := addTodo(assert, gateway, "third", nil)

	todos, err := gateway.FindAll(context.Background())
	assert.Nil(err)
	assert.Len(todos, 3)
	assert.Equal(third.ID, todos[0].ID)
	assert.Equal(second.ID, todos[1].ID)
	assert.Equal(first.ID, todos[2].ID)
}

func TestFindTodoByIDNotFound(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormTodoGateway(conn)

	found, err := gateway.FindByID(context.Background(), 42)
	assert.Nil(found)
	assert.True(errors.Is(err, model.ErrNotFound))
}

func TestCreateTodoWithCategories(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	todoGateway := db.NewGormTodoGateway(conn)
	categoryGateway := db.NewGormCategoryGateway(conn)

	work := addCategory(assert, categoryGateway, "work")
	home := addCategory(assert, categoryGateway, "home")

	todo := addTodo(assert, todoGateway, "sort inbox", []uint{work.ID, home.ID, work.ID})

	found, err := todoGateway.FindByID(context.Background(), todo.ID)
	assert.Nil(err)
	assert.Len(found.Categories, 2)
	// the duplicated id collapses into a single join row
	assert.EqualValues(2, countRows(assert, conn, &entity.TodoCategory{}))
}

func TestCreateTodoUnknownCategoryFails(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormTodoGateway(conn)

	todo := entity.Todo{Title: "orphan association"}
	err := gateway.Create(context.Background(), &todo, []uint{99})
	assert.NotNil(err)
	assert.True(errors.Is(err, model.ErrConstraintViolation))

	// the transaction rolled the todo row back as well
	assert.EqualValues(0, countRows(assert, conn, &entity.Todo{}))
}

func TestUpdateTodoReplacesCategories(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	todoGateway := db.NewGormTodoGateway(conn)
	categoryGateway := db.NewGormCategoryGateway(conn)

	work := addCategory(assert, categoryGateway, "work")
	home := addCategory(assert, categoryGateway, "home")
	todo := addTodo(assert, todoGateway, "water plants", []uint{work.ID})

	todo.Title = "water all plants"
	todo.IsCompleted = true
	assert.Nil(todoGateway.Update(context.Background(), todo, []uint{home.ID}))

	found, err := todoGateway.FindByID(context.Background(), todo.ID)
	assert.Nil(err)
	assert.Equal("water all plants", found.Title)
	assert.True(found.IsCompleted)
	assert.Len(found.Categories, 1)
	assert.Equal(home.ID, found.Categories[0].ID)
}

func TestUpdateTodoNotFound(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormTodoGateway(conn)

	missing := entity.Todo{ID: 7, Title: "ghost"}
	err := gateway.Update(context.Background(), &missing, nil)
	assert.True(errors.Is(err, model.ErrNotFound))
}

func TestDeleteTodoCascades(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	todoGateway := db.NewGormTodoGateway(conn)
	categoryGateway := db.NewGormCategoryGateway(conn)
	commentGateway := db.NewGormCommentGateway(conn)

	work := addCategory(assert, categoryGateway, "work")
	home := addCategory(assert, categoryGateway, "home")
	todo := addTodo(assert, todoGateway, "ship release", []uint{work.ID, home.ID})
	other := addTodo(assert, todoGateway, "unrelated", []uint{work.ID})

	for _, content := range []string{"first note", "second note", "third note"} {
		comment := entity.Comment{TodoID: todo.ID, Content: content, CreatedAt: time.Now()}
		assert.Nil(commentGateway.Create(context.Background(), &comment))
	}
	keep := entity.Comment{TodoID: other.ID, Content: "keep me", CreatedAt: time.Now()}
	assert.Nil(commentGateway.Create(context.Background(), &keep))

	assert.Nil(todoGateway.DeleteCascade(context.Background(), todo.ID))

	var commentCount int64
	assert.Nil(conn.Model(&entity.Comment{}).Where("todo_id = ?", todo.ID).Count(&commentCount).Error)
	assert.EqualValues(0, commentCount)

	var joinCount int64
	assert.Nil(conn.Model(&entity.TodoCategory{}).Where("todo_id = ?", todo.ID).Count(&joinCount).Error)
	assert.EqualValues(0, joinCount)

	// neither the categories nor the other todo's data are touched
	assert.EqualValues(2, countRows(assert, conn, &entity.Category{}))
	assert.EqualValues(1, countRows(assert, conn, &entity.Todo{}))
	assert.EqualValues(1, countRows(assert, conn, &entity.Comment{}))
	assert.EqualValues(1, countRows(assert, conn, &entity.TodoCategory{}))
}

func TestDeleteTodoNotFound(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormTodoGateway(conn)

	err := gateway.DeleteCascade(context.Background(), 42)
	assert.True(errors.Is(err, model.ErrNotFound))
}

func TestDeleteCategoryKeepsTodos(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	todoGateway := db.NewGormTodoGateway(conn)
	categoryGateway := db.NewGormCategoryGateway(conn)

	work := addCategory(assert, categoryGateway, "work")
	todo := addTodo(assert, todoGateway, "file expenses", []uint{work.ID})

	assert.Nil(categoryGateway.Delete(context.Background(), work.ID))

	assert.EqualValues(0, countRows(assert, conn, &entity.TodoCategory{}))
	assert.EqualValues(0, countRows(assert, conn, &entity.Category{}))

	found, err := todoGateway.FindByID(context.Background(), todo.ID)
	assert.Nil(err)
	assert.Empty(found.Categories)
}

func TestDeleteCommentRemovesExactlyOne(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	todoGateway := db.NewGormTodoGateway(conn)
	commentGateway := db.NewGormCommentGateway(conn)

	todo := addTodo(assert, todoGateway, "review PR", nil)
	first := entity.Comment{TodoID: todo.ID, Content: "looks good", CreatedAt: time.Now()}
	second := entity.Comment{TodoID: todo.ID, Content: "one nit", CreatedAt: time.Now()}
	assert.Nil(commentGateway.Create(context.Background(), &first))
	assert.Nil(commentGateway.Create(context.Background(), &second))

	assert.Nil(commentGateway.Delete(context.Background(), first.ID))

	assert.EqualValues(1, countRows(assert, conn, &entity.Comment{}))
	_, err := commentGateway.FindByID(context.Background(), second.ID)
	assert.Nil(err)
}

func TestUserEmailUnique(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)
	conn := getDB(assert)
	gateway := db.NewGormUserGateway(conn)

	user := entity.User{Email: "a@example.com", Roles: entity.RoleList{"ROLE_USER"}, Password: "x"}
	assert.Nil(gateway.Create(context.Background(), &user))

	duplicate := entity.User{Email: "a@example.com", Roles: entity.RoleList{"ROLE_USER"}, Password: "y"}
	err := gateway.Create(context.Background(), &duplicate)
	assert.True(errors.Is(err, model.ErrConstraintViolation))
	assert.EqualValues(1, countRows(assert, conn, &entity.User{}))
}
