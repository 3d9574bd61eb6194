package store

const (
	getSaltByDigest = `
		SELECT salt
		FROM encryption_salts
		WHERE identity_digest = $1;`

	upsertSalt = `
		INSERT INTO encryption_salts (identity_digest, salt)
		VALUES ($1, $2)
		ON CONFLICT (identity_digest) DO UPDATE SET salt = excluded.salt;`

	countSaltByDigest = `
		SELECT COUNT(1)
		FROM encryption_salts
		WHERE identity_digest = $1;`

	deleteSaltByDigest = `
		DELETE FROM encryption_salts
		WHERE identity_digest = $1;`

	getWrappedKeyByDigest = `
		SELECT wrapped_key
		FROM wrapped_keys
		WHERE identity_digest = $1;`

	upsertWrappedKey = `
		INSERT INTO wrapped_keys (identity_digest, wrapped_key, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (identity_digest) DO UPDATE SET
			wrapped_key = excluded.wrapped_key,
			updated_at  = CURRENT_TIMESTAMP;`

	deleteWrappedKeyByDigest = `
		DELETE FROM wrapped_keys
		WHERE identity_digest = $1;`
)
