package mbtiles

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// MBTiles is a tile set stored in an SQLite database following the MBTiles
// 1.3 layout.
type MBTiles struct {
	db             *sql.DB
	tileInsertStmt *sql.Stmt
}

// Open opens or creates the mbtiles file at given path and stores name and format
// in its metadata.
func Open(mbTilesPath string, name string, format string) (*MBTiles, error) {
	db, err := sql.Open("sqlite3", mbTilesPath)
	if err != nil {
		return nil, err
	}

	// tiles are written from several goroutines
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		PRAGMA application_id = 0x4d504258;
		CREATE TABLE IF NOT EXISTS metadata (name text, value text);
		CREATE UNIQUE INDEX IF NOT EXISTS metadata_index ON metadata (name);
		CREATE TABLE IF NOT EXISTS tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);
		CREATE UNIQUE INDEX IF NOT EXISTS tile_index ON tiles (zoom_level, tile_column, tile_row);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	tileInsertStmt, err := db.Prepare("INSERT OR REPLACE INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (?, ?, ?, ?);")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("prepare tile insert: %w", err)
	}

	mbTiles := &MBTiles{db: db, tileInsertStmt: tileInsertStmt}

	err = mbTiles.InsertMeta(map[string]string{
		"name":   name,
		"format": format,
	})
	if err != nil {
		mbTiles.Close()
		return nil, err
	}

	return mbTiles, nil
}

// Close releases db file
func (mbTiles *MBTiles) Close() error {
	if err := mbTiles.tileInsertStmt.Close(); err != nil {
		mbTiles.db.Close()
		return err
	}

	return mbTiles.db.Close()
}

// InsertTile inserts a tile at (z, x, y). y counts from the top as in XYZ
// tile schemes and is flipped to the TMS row MBTiles stores.
func (mbTiles *MBTiles) InsertTile(z, x, y uint, tileData []byte) error {
	row := (uint(1) << z) - 1 - y
	_, err := mbTiles.tileInsertStmt.Exec(z, x, row, tileData)
	return err
}

// InsertMeta sets metadata entries
func (mbTiles *MBTiles) InsertMeta(entries map[string]string) error {
	tx, err := mbTiles.db.Begin()
	if err != nil {
		return err
	}

	for name, value := range entries {
		if _, err := tx.Exec("INSERT OR REPLACE INTO metadata (name, value) VALUES (?, ?);", name, value); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert metadata %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// Tile returns the data stored at (z, x, y), y counting from the top.
func (mbTiles *MBTiles) Tile(z, x, y uint) ([]byte, error) {
	var data []byte
	row := (uint(1) << z) - 1 - y
	err := mbTiles.db.QueryRow("SELECT tile_data FROM tiles WHERE zoom_level = ? AND tile_column = ? AND tile_row = ?;", z, x, row).Scan(&data)
	return data, err
}

// Meta returns the metadata value for name.
func (mbTiles *MBTiles) Meta(name string) (string, error) {
	var value string
	err := mbTiles.db.QueryRow("SELECT value FROM metadata WHERE name = ?;", name).Scan(&value)
	return value, err
}
