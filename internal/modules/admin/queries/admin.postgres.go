package queries

// AdminQueries regroupe toutes les requêtes SQL pour la gestion des admins
var AdminQueries = struct {
	GetByEmail           string
	GetByID              string
	ExistsByEmail        string
	Create               string
	List                 string
	CountByRole          string
	CreateSession        string
	GetSessionByToken    string
	DeleteSession        string
	UpdateLastActivity   string
	CleanExpiredSessions string
}{
	/**
	 * Récupère un admin par email
	 * Paramètres: $1 = email
	 */
	GetByEmail: `
		SELECT
			id,
			name,
			email,
			password_hash,
			role,
			created_at,
			updated_at
		FROM admins
		WHERE email = $1
	`,

	/**
	 * Récupère un admin par id
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT
			id,
			name,
			email,
			password_hash,
			role,
			created_at,
			updated_at
		FROM admins
		WHERE id = $1
	`,

	/**
	 * Vérifie l'existence d'un email
	 * Paramètres: $1 = email
	 */
	ExistsByEmail: `
		SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)
	`,

	/**
	 * Crée un nouvel admin
	 * Paramètres: $1 = name, $2 = email, $3 = password_hash, $4 = role
	 */
	Create: `
		INSERT INTO admins (name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, email, password_hash, role, created_at, updated_at
	`,

	/**
	 * Liste tous les admins (sans le hash)
	 * Paramètres: aucun
	 */
	List: `
		SELECT
			id,
			name,
			email,
			role,
			created_at
		FROM admins
		ORDER BY id
	`,

	/**
	 * Compte les admins par rôle pour le dashboard
	 * Paramètres: aucun
	 */
	CountByRole: `
		SELECT
			COUNT(*) AS total_admins,
			COUNT(*) FILTER (WHERE role = 'admin') AS regular_admins,
			COUNT(*) FILTER (WHERE role = 'superadmin') AS super_admins
		FROM admins
	`,

	/**
	 * Crée une nouvelle session dans PostgreSQL (fallback)
	 * Paramètres: $1 = token, $2 = admin_id, $3 = ip_address,
	 *             $4 = user_agent, $5 = expires_at
	 */
	CreateSession: `
		INSERT INTO admin_sessions (
			token, admin_id, ip_address, user_agent, expires_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (token) DO UPDATE SET
			last_activity = NOW()
	`,

	/**
	 * Récupère une session active par token (fallback PostgreSQL)
	 * Paramètres: $1 = token
	 */
	GetSessionByToken: `
		SELECT
			s.token,
			s.admin_id,
			a.name,
			a.email,
			a.role,
			s.ip_address,
			s.user_agent,
			s.created_at,
			s.last_activity,
			s.expires_at
		FROM admin_sessions s
		JOIN admins a ON s.admin_id = a.id
		WHERE s.token = $1
		  AND s.expires_at > NOW()
	`,

	/**
	 * Supprime une session par token (fallback PostgreSQL)
	 * Paramètres: $1 = token
	 */
	DeleteSession: `
		DELETE FROM admin_sessions
		WHERE token = $1
	`,

	/**
	 * Met à jour la dernière activité d'une session
	 * Paramètres: $1 = token
	 */
	UpdateLastActivity: `
		UPDATE admin_sessions
		SET last_activity = NOW()
		WHERE token = $1
	`,

	/**
	 * Nettoie les sessions expirées
	 * Paramètres: aucun
	 */
	CleanExpiredSessions: `
		DELETE FROM admin_sessions
		WHERE expires_at <= NOW()
	`,
}
