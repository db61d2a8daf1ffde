package main

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunStore archives the outcome of each run in a SQLite file, so that
// performance under different weather conditions can be compared later.
type RunStore struct {
	db *sql.DB
}

// RunRecord is one archived run.
type RunRecord struct {
	ID         int64
	CreatedAt  time.Time
	TAmbientC  float64
	PAmbientPa float64
	RHFraction float64
	DewPointC  float64
	MRef       float64
	QActualW   float64
	WCompW     float64
	COP        float64
	WaterKgHr  float64
}

func OpenRunStore(path string) (*RunStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &RunStore{db: db}
	if err := s.ensure_schema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (self *RunStore) Close() error {
	return self.db.Close()
}

func (self *RunStore) ensure_schema() error {
	const create_table = `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  created_at TEXT NOT NULL,
  t_ambient_c REAL NOT NULL,
  p_ambient_pa REAL NOT NULL,
  rh_fraction REAL NOT NULL,
  dew_point_c REAL NOT NULL,
  m_ref REAL NOT NULL,
  q_actual_w REAL NOT NULL,
  w_comp_w REAL NOT NULL,
  cop REAL NOT NULL,
  water_kg_hr REAL NOT NULL
);
`
	if _, err := self.db.Exec(create_table); err != nil {
		return err
	}
	_, err := self.db.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`)
	return err
}

/*
Archive the outcome of one run.

    Args:
        res: run result; the optimum may be nil, in which case the
            numeric optimum columns are stored as zero

    Returns:
        nil, or the database error
*/
func (self *RunStore) save_run(res *RunResult) error {
	var m_ref, q_actual, w_comp, cop, water float64
	if res.Optimum != nil {
		m_ref = res.Optimum.MRef
		q_actual = res.Optimum.QActual.value()
		w_comp = res.Optimum.WComp
		cop = res.Optimum.COP.value()
		water = res.Optimum.WaterKgHr
	}

	_, err := self.db.Exec(`
INSERT INTO runs
(created_at, t_ambient_c, p_ambient_pa, rh_fraction, dew_point_c, m_ref, q_actual_w, w_comp_w, cop, water_kg_hr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		time.Now().UTC().Format(time.RFC3339),
		res.TAmbientC, res.PAmbientPa, res.RHFraction, res.DewPointC,
		m_ref, q_actual, w_comp, cop, water,
	)
	return err
}

func (self *RunStore) count_runs() (int, error) {
	var n int
	err := self.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n)
	return n, err
}

// recent_runs returns the newest runs, most recent first.
func (self *RunStore) recent_runs(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := self.db.Query(`
SELECT id, created_at, t_ambient_c, p_ambient_pa, rh_fraction, dew_point_c, m_ref, q_actual_w, w_comp_w, cop, water_kg_hr
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var r RunRecord
		var created string
		if err := rows.Scan(
			&r.ID, &created, &r.TAmbientC, &r.PAmbientPa, &r.RHFraction, &r.DewPointC,
			&r.MRef, &r.QActualW, &r.WCompW, &r.COP, &r.WaterKgHr,
		); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}
