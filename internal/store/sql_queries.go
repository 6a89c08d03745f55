package store

const (
	createUser = `INSERT INTO users (email, username, password_hash, role, is_verified)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, email, username, password_hash, role, is_verified, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, username, password_hash, role, is_verified, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByEmailOrUsername = `SELECT user_id, email, username, password_hash, role, is_verified, created_at, updated_at
    FROM users
    WHERE email = $1 OR username = $2;`

	findUserByID = `SELECT user_id, email, username, password_hash, role, is_verified, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserIDsByUsername = `SELECT user_id
    FROM users
    WHERE username ILIKE $1;`

	updateUsername = `UPDATE users
    SET username = $2, updated_at = NOW()
    WHERE user_id = $1
    RETURNING user_id, email, username, password_hash, role, is_verified, created_at, updated_at;`

	countPostsByAuthor = `SELECT COUNT(*)
    FROM posts
    WHERE author_id = $1;`

	findPostByIDWithAuthor = `SELECT p.post_id, p.author_id, u.username, p.title, p.content, p.status, p.created_at, p.updated_at
    FROM posts p
    JOIN users u ON u.user_id = p.author_id
    WHERE p.post_id = $1;`
)
