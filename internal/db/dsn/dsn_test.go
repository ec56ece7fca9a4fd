package dsn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db/dsn"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "sqlite uses the path",
			db:   config.DB{Engine: config.EngineSQLite, Path: "./data/barcode-maker.db"},
			want: "./data/barcode-maker.db",
		},
		{
			name: "mysql with extras",
			db: config.DB{
				Engine: config.EngineMySQL, Host: "db", Port: 3306, User: "barcode", Password: "secret",
				Name: "barcode_maker", Extras: "parseTime=True",
			},
			want: "barcode:secret@tcp(db:3306)/barcode_maker?parseTime=True",
		},
		{
			name: "mysql without extras",
			db:   config.DB{Engine: config.EngineMySQL, Host: "db", Port: 3306, User: "u", Password: "p", Name: "n"},
			want: "u:p@tcp(db:3306)/n",
		},
		{
			name: "postgres escapes credentials",
			db: config.DB{
				Engine: config.EnginePostgres, Host: "pg", Port: 5432, User: "barcode", Password: "p@ss/word",
				Name: "barcode_maker", Extras: "sslmode=disable",
			},
			want: "postgres://barcode:p%40ss%2Fword@pg:5432/barcode_maker?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dsn.Create(tt.db))
		})
	}
}
