package assetcache

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotCached indica que a URL ainda não foi baixada.
var ErrNotCached = errors.New("asset não está no cache")

// AssetModel é o esquema de um asset baixado.
type AssetModel struct {
	URL       string `gorm:"primaryKey"`
	Digest    string `gorm:"index"` // SHA-1 do conteúdo
	Size      int64
	Data      []byte
	UpdatedAt time.Time
}

// CacheMetadata guarda informações globais do cache.
type CacheMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

const CurrentFormatVersion = 1

// Cache guarda os bytes dos assets em SQLite para que a cena abra sem rede.
type Cache struct {
	DB  *gorm.DB
	dir string
}

// Open abre (ou cria) o banco <dir>/assets.db e roda as migrações.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de cache: %w", err)
	}

	dbPath := filepath.Join(dir, "assets.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&AssetModel{}, &CacheMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}
	if err := db.Save(&CacheMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)}).Error; err != nil {
		log.Printf("[Cache] AVISO: falha ao gravar versão do formato: %v", err)
	}

	log.Printf("[Cache] Banco de assets aberto: %s", dbPath)
	return &Cache{DB: db, dir: dir}, nil
}

// Digest retorna o SHA-1 hexadecimal dos dados.
func Digest(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// Get retorna os bytes guardados para a URL.
func (c *Cache) Get(url string) (*AssetModel, error) {
	var model AssetModel
	err := c.DB.First(&model, "url = ?", url).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar cache: %w", err)
	}
	return &model, nil
}

// Put grava (ou substitui) os bytes de uma URL.
func (c *Cache) Put(url string, data []byte) (*AssetModel, error) {
	model := AssetModel{
		URL:    url,
		Digest: Digest(data),
		Size:   int64(len(data)),
		Data:   data,
	}
	if err := c.DB.Save(&model).Error; err != nil {
		return nil, fmt.Errorf("falha ao salvar asset %s: %w", url, err)
	}
	return &model, nil
}

// Delete remove a URL do cache.
func (c *Cache) Delete(url string) error {
	return c.DB.Delete(&AssetModel{}, "url = ?", url).Error
}

// Materialize grava o asset em <dir>/<digest><ext> e retorna o caminho. O
// arquivo é reaproveitado se já existir com o mesmo tamanho.
func (c *Cache) Materialize(model *AssetModel, ext string) (string, error) {
	path := filepath.Join(c.dir, model.Digest+ext)
	if st, err := os.Stat(path); err == nil && st.Size() == model.Size {
		return path, nil
	}

	tmp, err := os.CreateTemp(c.dir, "asset_*")
	if err != nil {
		return "", fmt.Errorf("falha ao criar arquivo temporário: %w", err)
	}
	if _, err := tmp.Write(model.Data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("falha ao gravar asset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("falha ao fechar asset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("falha ao finalizar asset: %w", err)
	}
	return path, nil
}

// Close fecha o banco.
func (c *Cache) Close() {
	if c.DB != nil {
		sqlDB, _ := c.DB.DB()
		if sqlDB != nil {
			log.Println("[Cache] Fechando banco de dados SQLite...")
			sqlDB.Close()
		}
	}
}
