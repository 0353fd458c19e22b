package user

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	getUserByIDQuery       = `SELECT id, username, password FROM users WHERE id = $1`
	getUserByUsernameQuery = `SELECT id, username, password FROM users WHERE username = $1`
	insertUserQuery        = `INSERT INTO users (username, password) VALUES ($1,$2) RETURNING id`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByIDQuery, id))
}

func (r *PostgresRepository) GetByUsername(username string) (User, error) {
	return r.scanOne(r.db.QueryRow(getUserByUsernameQuery, username))
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	if err := r.db.QueryRow(insertUserQuery, u.Username, u.Password).Scan(&id); err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (User, error) {
	u := User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
