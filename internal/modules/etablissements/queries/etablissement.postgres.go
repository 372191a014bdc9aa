package queries

// Projection plate commune à toutes les lectures d'établissements
const etablissementSelect = `
	SELECT
		e.id,
		e.code_etablissement,
		e.nom_etablissement,
		l.region,
		l.prefecture,
		l.canton_village_autonome,
		l.ville_village_quartier,
		l.commune_etab,
		m.libelle_type_milieu,
		st.libelle_type_statut_etab,
		sy.libelle_type_systeme,
		a.libelle_type_annee,
		COALESCE(eq.existe_elect, FALSE),
		COALESCE(eq.existe_latrine, FALSE),
		COALESCE(eq.existe_latrine_fonct, FALSE),
		COALESCE(eq.acces_toute_saison, FALSE),
		COALESCE(eq.eau, FALSE),
		COALESCE(ef.sommedenb_eff_g, 0),
		COALESCE(ef.sommedenb_eff_f, 0),
		COALESCE(ef.tot, 0),
		COALESCE(ef.sommedenb_ens_h, 0),
		COALESCE(ef.sommedenb_ens_f, 0),
		COALESCE(ef.total_ense, 0),
		COALESCE(i.sommedenb_salles_classes_dur, 0),
		COALESCE(i.sommedenb_salles_classes_banco, 0),
		COALESCE(i.sommedenb_salles_classes_autre, 0),
		e.latitude,
		e.longitude,
		e.created_at,
		e.updated_at
	FROM etablissements e
	JOIN localisations l ON l.id = e.localisation_id
	JOIN milieux m ON m.id = e.milieu_id
	JOIN statuts st ON st.id = e.statut_id
	JOIN systemes sy ON sy.id = e.systeme_id
	LEFT JOIN annees a ON a.id = e.annee_id
	LEFT JOIN equipements_etablissement eq ON eq.etablissement_id = e.id
	LEFT JOIN effectifs ef ON ef.etablissement_id = e.id
	LEFT JOIN infrastructures i ON i.etablissement_id = e.id
`

// Filtres épars de la recherche : un paramètre NULL ne contraint pas.
// Le nom est filtré en sous-chaîne sensible à la casse (LIKE, index trigramme).
const searchFilters = `
	WHERE ($1::text IS NULL OR e.nom_etablissement LIKE '%' || $1 || '%')
	  AND ($2::text IS NULL OR l.region = $2)
	  AND ($3::text IS NULL OR l.prefecture = $3)
	  AND ($4::text IS NULL OR m.libelle_type_milieu = $4)
	  AND ($5::text IS NULL OR st.libelle_type_statut_etab = $5)
	  AND ($6::text IS NULL OR sy.libelle_type_systeme = $6)
	  AND ($7::boolean IS NULL OR COALESCE(eq.existe_elect, FALSE) = $7)
	  AND ($8::boolean IS NULL OR COALESCE(eq.existe_latrine, FALSE) = $8)
	  AND ($9::boolean IS NULL OR COALESCE(eq.existe_latrine_fonct, FALSE) = $9)
	  AND ($10::boolean IS NULL OR COALESCE(eq.acces_toute_saison, FALSE) = $10)
	  AND ($11::boolean IS NULL OR COALESCE(eq.eau, FALSE) = $11)
`

// EtablissementQueries regroupe toutes les requêtes SQL du domaine établissements
var EtablissementQueries = struct {
	Count                 string
	List                  string
	SearchCount           string
	SearchPage            string
	MapProjection         string
	GetByID               string
	ExistsByCode          string
	ExistsByCodeExcluding string
	ResolveMilieu         string
	ResolveStatut         string
	ResolveSysteme        string
	ResolveAnnee          string
	FindLocalisation      string
	CreateLocalisation    string
	InsertEtablissement   string
	InsertEquipement      string
	InsertEffectif        string
	InsertInfrastructure  string
	UpdateEtablissement   string
	UpdateEquipement      string
	UpdateEffectif        string
	UpdateInfrastructure  string
	Delete                string
}{
	/**
	 * Compte tous les établissements
	 * Paramètres: aucun
	 */
	Count: `SELECT COUNT(*) FROM etablissements`,

	/**
	 * Page de la liste, triée par id
	 * Paramètres: $1 = limit, $2 = offset
	 */
	List: etablissementSelect + `
		ORDER BY e.id
		LIMIT $1 OFFSET $2
	`,

	/**
	 * Compte les résultats de recherche avec filtres épars
	 * Paramètres: $1 = nom (sous-chaîne), $2 = region, $3 = prefecture,
	 *             $4 = milieu, $5 = statut, $6 = systeme,
	 *             $7..$11 = existe_elect, existe_latrine, existe_latrine_fonct,
	 *                       acces_toute_saison, eau
	 */
	SearchCount: `
		SELECT COUNT(*)
		FROM etablissements e
		JOIN localisations l ON l.id = e.localisation_id
		JOIN milieux m ON m.id = e.milieu_id
		JOIN statuts st ON st.id = e.statut_id
		JOIN systemes sy ON sy.id = e.systeme_id
		LEFT JOIN equipements_etablissement eq ON eq.etablissement_id = e.id
	` + searchFilters,

	/**
	 * Page de résultats de recherche
	 * Paramètres: $1..$11 = mêmes filtres que SearchCount,
	 *             $12 = limit, $13 = offset
	 */
	SearchPage: etablissementSelect + searchFilters + `
		ORDER BY e.id
		LIMIT $12 OFFSET $13
	`,

	/**
	 * Projection cartographique de tous les établissements
	 * Paramètres: aucun
	 */
	MapProjection: `
		SELECT id, nom_etablissement, latitude, longitude
		FROM etablissements
		ORDER BY id
	`,

	/**
	 * Détail d'un établissement
	 * Paramètres: $1 = id
	 */
	GetByID: etablissementSelect + `
		WHERE e.id = $1
	`,

	/**
	 * Vérifie l'existence d'un code établissement
	 * Paramètres: $1 = code_etablissement
	 */
	ExistsByCode: `
		SELECT EXISTS(SELECT 1 FROM etablissements WHERE code_etablissement = $1)
	`,

	/**
	 * Vérifie l'existence d'un code établissement en excluant une ligne
	 * Paramètres: $1 = code_etablissement, $2 = id exclu
	 */
	ExistsByCodeExcluding: `
		SELECT EXISTS(
			SELECT 1 FROM etablissements
			WHERE code_etablissement = $1 AND id <> $2
		)
	`,

	/**
	 * Résolution des référentiels par libellé (seed-only, jamais créés ici)
	 * Paramètres: $1 = libellé
	 */
	ResolveMilieu:  `SELECT id FROM milieux WHERE libelle_type_milieu = $1`,
	ResolveStatut:  `SELECT id FROM statuts WHERE libelle_type_statut_etab = $1`,
	ResolveSysteme: `SELECT id FROM systemes WHERE libelle_type_systeme = $1`,
	ResolveAnnee:   `SELECT id FROM annees WHERE libelle_type_annee = $1`,

	/**
	 * Recherche une localisation par son 5-uplet
	 * Paramètres: $1 = region, $2 = prefecture, $3 = canton_village_autonome,
	 *             $4 = ville_village_quartier, $5 = commune_etab (NULL accepté)
	 */
	FindLocalisation: `
		SELECT id FROM localisations
		WHERE region = $1
		  AND prefecture = $2
		  AND canton_village_autonome = $3
		  AND ville_village_quartier = $4
		  AND commune_etab IS NOT DISTINCT FROM $5
	`,

	/**
	 * Crée une localisation
	 * Paramètres: $1..$5 = même 5-uplet que FindLocalisation
	 */
	CreateLocalisation: `
		INSERT INTO localisations (
			region, prefecture, canton_village_autonome,
			ville_village_quartier, commune_etab, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`,

	/**
	 * Insère un établissement
	 * Paramètres: $1 = code, $2 = nom, $3 = latitude, $4 = longitude,
	 *             $5 = localisation_id, $6 = milieu_id, $7 = statut_id,
	 *             $8 = systeme_id, $9 = annee_id (NULL accepté)
	 */
	InsertEtablissement: `
		INSERT INTO etablissements (
			code_etablissement, nom_etablissement, latitude, longitude,
			localisation_id, milieu_id, statut_id, systeme_id, annee_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`,

	/**
	 * Insère la ligne équipements d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$6 = les cinq indicateurs
	 */
	InsertEquipement: `
		INSERT INTO equipements_etablissement (
			etablissement_id, existe_elect, existe_latrine,
			existe_latrine_fonct, acces_toute_saison, eau,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`,

	/**
	 * Insère la ligne effectifs d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$7 = les six compteurs
	 */
	InsertEffectif: `
		INSERT INTO effectifs (
			etablissement_id, sommedenb_eff_g, sommedenb_eff_f, tot,
			sommedenb_ens_h, sommedenb_ens_f, total_ense,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`,

	/**
	 * Insère la ligne infrastructures d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$4 = les trois compteurs de salles
	 */
	InsertInfrastructure: `
		INSERT INTO infrastructures (
			etablissement_id, sommedenb_salles_classes_dur,
			sommedenb_salles_classes_banco, sommedenb_salles_classes_autre,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, NOW(), NOW())
	`,

	/**
	 * Met à jour un établissement (état complet après fusion)
	 * Paramètres: $1 = id, $2 = code, $3 = nom, $4 = latitude, $5 = longitude,
	 *             $6 = localisation_id, $7 = milieu_id, $8 = statut_id,
	 *             $9 = systeme_id, $10 = annee_id
	 */
	UpdateEtablissement: `
		UPDATE etablissements SET
			code_etablissement = $2,
			nom_etablissement = $3,
			latitude = $4,
			longitude = $5,
			localisation_id = $6,
			milieu_id = $7,
			statut_id = $8,
			systeme_id = $9,
			annee_id = $10,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Met à jour les équipements d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$6 = les cinq indicateurs
	 */
	UpdateEquipement: `
		UPDATE equipements_etablissement SET
			existe_elect = $2,
			existe_latrine = $3,
			existe_latrine_fonct = $4,
			acces_toute_saison = $5,
			eau = $6,
			updated_at = NOW()
		WHERE etablissement_id = $1
	`,

	/**
	 * Met à jour les effectifs d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$7 = les six compteurs
	 */
	UpdateEffectif: `
		UPDATE effectifs SET
			sommedenb_eff_g = $2,
			sommedenb_eff_f = $3,
			tot = $4,
			sommedenb_ens_h = $5,
			sommedenb_ens_f = $6,
			total_ense = $7,
			updated_at = NOW()
		WHERE etablissement_id = $1
	`,

	/**
	 * Met à jour les infrastructures d'un établissement
	 * Paramètres: $1 = etablissement_id, $2..$4 = les trois compteurs de salles
	 */
	UpdateInfrastructure: `
		UPDATE infrastructures SET
			sommedenb_salles_classes_dur = $2,
			sommedenb_salles_classes_banco = $3,
			sommedenb_salles_classes_autre = $4,
			updated_at = NOW()
		WHERE etablissement_id = $1
	`,

	/**
	 * Supprime un établissement (les lignes satellites suivent par cascade)
	 * Paramètres: $1 = id
	 */
	Delete: `DELETE FROM etablissements WHERE id = $1`,
}
