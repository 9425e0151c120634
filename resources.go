package jeweljam

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/images
var assetsFS embed.FS

// ResourceType names an embedded sprite.
type ResourceType string

const (
	ResourceBackground ResourceType = "spr_background"
	ResourceJewel1     ResourceType = "spr_single_jewel1"
	ResourceJewel2     ResourceType = "spr_single_jewel2"
	ResourceJewel3     ResourceType = "spr_single_jewel3"
)

// AllResources lists every sprite shipped with the game.
var AllResources = []ResourceType{
	ResourceBackground,
	ResourceJewel1,
	ResourceJewel2,
	ResourceJewel3,
}

// ResourceManager loads sprites from the embedded assets and caches them.
type ResourceManager struct {
	cache  map[ResourceType]*ebiten.Image
	mutex  sync.RWMutex
	loaded bool
}

// NewResourceManager creates an empty resource manager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		cache: make(map[ResourceType]*ebiten.Image),
	}
}

// LoadResource returns the sprite, loading it on first use.
func (rm *ResourceManager) LoadResource(resourceType ResourceType) (*ebiten.Image, error) {
	rm.mutex.RLock()
	if img, exists := rm.cache[resourceType]; exists {
		rm.mutex.RUnlock()
		return img, nil
	}
	rm.mutex.RUnlock()

	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	// another caller may have loaded it meanwhile
	if img, exists := rm.cache[resourceType]; exists {
		return img, nil
	}

	src, err := decodeResource(resourceType)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	rm.cache[resourceType] = img
	log.Printf("Loaded resource: %s", resourceType)

	return img, nil
}

// LoadResourceSafe loads the sprite, returning nil on failure.
func (rm *ResourceManager) LoadResourceSafe(resourceType ResourceType) *ebiten.Image {
	img, err := rm.LoadResource(resourceType)
	if err != nil {
		log.Printf("Failed to load resource %s: %v", resourceType, err)
		return nil
	}
	return img
}

// PreloadResources loads every sprite in AllResources.
func (rm *ResourceManager) PreloadResources() error {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if rm.loaded {
		return nil
	}

	for _, resourceType := range AllResources {
		if _, exists := rm.cache[resourceType]; exists {
			continue
		}
		src, err := decodeResource(resourceType)
		if err != nil {
			return err
		}
		rm.cache[resourceType] = ebiten.NewImageFromImage(src)
		log.Printf("Preloaded resource: %s", resourceType)
	}

	rm.loaded = true
	log.Println("All resources preloaded successfully")
	return nil
}

// GetResource returns the sprite, or a magenta placeholder of the given
// size if it cannot be loaded.
func (rm *ResourceManager) GetResource(resourceType ResourceType, fallbackW, fallbackH int) *ebiten.Image {
	if img := rm.LoadResourceSafe(resourceType); img != nil {
		return img
	}
	return rm.CreateFallbackImage(fallbackW, fallbackH, color.RGBA{255, 0, 255, 255})
}

// IsResourceLoaded reports whether the sprite is cached.
func (rm *ResourceManager) IsResourceLoaded(resourceType ResourceType) bool {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	_, exists := rm.cache[resourceType]
	return exists
}

// GetCacheSize returns the number of cached sprites.
func (rm *ResourceManager) GetCacheSize() int {
	rm.mutex.RLock()
	defer rm.mutex.RUnlock()
	return len(rm.cache)
}

// CreateFallbackImage creates a solid placeholder image.
func (rm *ResourceManager) CreateFallbackImage(width, height int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	img.Fill(clr)
	return img
}

func resourcePath(resourceType ResourceType) (string, error) {
	for _, r := range AllResources {
		if r == resourceType {
			return "assets/images/" + string(r) + ".png", nil
		}
	}
	return "", fmt.Errorf("unknown resource type: %s", resourceType)
}

// decodeResource reads and decodes a sprite without touching the GPU.
func decodeResource(resourceType ResourceType) (image.Image, error) {
	path, err := resourcePath(resourceType)
	if err != nil {
		return nil, err
	}

	b, err := assetsFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource %s: %w", resourceType, err)
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to decode resource %s: %w", resourceType, err)
	}
	return img, nil
}

var (
	globalResourceManager *ResourceManager
	globalResourceOnce    sync.Once
)

// Resources returns the resource manager shared by the whole game.
func Resources() *ResourceManager {
	globalResourceOnce.Do(func() {
		globalResourceManager = NewResourceManager()
	})
	return globalResourceManager
}
