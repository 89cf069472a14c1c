package constants

const (
	ListReservations = `
	SELECT r.id, r.start_time, r.end_time, r.requires_review, r.notes,
	       COALESCE(u.name, r.user_id) AS user_name,
	       a.tail_number AS resource_code,
	       a.color AS resource_color
	FROM reservations r
	JOIN airplanes a ON r.airplane_id = a.id
	LEFT JOIN users u ON r.user_id = u.id
	ORDER BY r.start_time ASC
	`

	ListFutureReservations = `
	SELECT r.id, r.start_time, r.end_time, r.requires_review, r.notes,
	       COALESCE(u.name, r.user_id) AS user_name,
	       a.tail_number AS resource_code,
	       a.color AS resource_color
	FROM reservations r
	JOIN airplanes a ON r.airplane_id = a.id
	LEFT JOIN users u ON r.user_id = u.id
	WHERE r.start_time >= NOW()
	ORDER BY r.start_time ASC
	`

	GetReservationByID = `
	SELECT r.id, r.start_time, r.end_time, r.requires_review, r.notes,
	       COALESCE(u.name, r.user_id) AS user_name,
	       a.tail_number AS resource_code,
	       a.color AS resource_color
	FROM reservations r
	JOIN airplanes a ON r.airplane_id = a.id
	LEFT JOIN users u ON r.user_id = u.id
	WHERE r.id = $1
	`

	InsertReservation = `
	INSERT INTO reservations (airplane_id, user_id, start_time, end_time, requires_review, notes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id
	`

	UpdateReservation = `
	UPDATE reservations
	SET start_time = $1, end_time = $2, airplane_id = $3, notes = $4
	WHERE id = $5
	`

	DeleteReservation = `
	DELETE FROM reservations WHERE id = $1
	`

	ListAirplanes = `
	SELECT id, tail_number, name, color FROM airplanes ORDER BY tail_number
	`
)
