package profiles

const (
	queryGetProfile = `
		SELECT document
		FROM user_profiles
		WHERE user_id = $1
	`

	queryMergeOnboarding = `
		INSERT INTO user_profiles (user_id, document, updated_at)
		VALUES ($1, jsonb_build_object('onboarding', $2::jsonb), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			document = user_profiles.document || jsonb_build_object(
				'onboarding',
				COALESCE(user_profiles.document->'onboarding', '{}'::jsonb) || $2::jsonb
			),
			updated_at = NOW()
	`

	queryUpdateOnboarding = `
		UPDATE user_profiles
		SET
			document = document || jsonb_build_object(
				'onboarding',
				COALESCE(document->'onboarding', '{}'::jsonb) || $2::jsonb
			),
			updated_at = NOW()
		WHERE user_id = $1
	`

	queryIncrementStat = `
		INSERT INTO user_profiles (user_id, document, updated_at)
		VALUES ($1, jsonb_build_object('stats', jsonb_build_object($2::text, $3::bigint)), NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET
			document = user_profiles.document || jsonb_build_object(
				'stats',
				COALESCE(user_profiles.document->'stats', '{}'::jsonb) || jsonb_build_object(
					$2::text,
					COALESCE((user_profiles.document->'stats'->>$2::text)::bigint, 0) + $3::bigint
				)
			),
			updated_at = NOW()
	`
)
