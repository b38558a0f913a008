package models

// All trả về danh sách model cần AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Property{},
		&City{},
		&District{},
		&NewsCategory{},
		&News{},
		&Page{},
		&MenuItem{},
		&SystemConfig{},
		&User{},
	}
}
