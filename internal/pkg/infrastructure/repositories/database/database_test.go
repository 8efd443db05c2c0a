package database

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatSeedIsRead(t *testing.T) {
	is := is.New(t)
	records, err := ReadSeed(zerolog.Logger{}, bytes.NewBufferString(csvSeed))
	is.NoErr(err)
	is.Equal(len(records), 3)
	is.Equal(records[0], SeedRecord{Block: "Bloco A", Sector: "TI", Room: "101", Asset: "Notebook Dell", Status: "Em Uso"})
	is.Equal(records[2].Status, "Em Uso") // empty status should default to Em Uso
}

func TestThatLoadFailsOnBadStatus(t *testing.T) {
	is := is.New(t)
	_, err := ReadSeed(zerolog.Logger{}, bytes.NewBufferString(csvWithBadStatus))
	is.True(err != nil)
}

func TestThatLoadFailsOnMissingColumns(t *testing.T) {
	is := is.New(t)
	_, err := ReadSeed(zerolog.Logger{}, bytes.NewBufferString(csvWithMissingColumn))
	is.True(err != nil)
}

func TestThatLoadFailsOnEmptyRoom(t *testing.T) {
	is := is.New(t)
	_, err := ReadSeed(zerolog.Logger{}, bytes.NewBufferString(csvWithEmptyRoom))
	is.True(err != nil)
}

const csvSeed string = `bloco;setor;sala;patrimonio;status
Bloco A;TI;101;Notebook Dell;Em Uso
Bloco A;TI;102;Projetor Epson;Guardado
Bloco B;RH;201;Cadeira;`

const csvWithBadStatus string = `bloco;setor;sala;patrimonio;status
Bloco A;TI;101;Notebook Dell;Quebrado`

const csvWithMissingColumn string = `bloco;setor;sala;patrimonio;status
Bloco A;TI;Notebook Dell;Em Uso`

const csvWithEmptyRoom string = `bloco;setor;sala;patrimonio;status
Bloco A;TI; ;Notebook Dell;Em Uso`
