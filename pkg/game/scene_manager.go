package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 按游戏ID创建对应的游戏场景，避免 scenes 包与本包循环依赖
type SceneFactory func(gameID string) Scene

// SceneManager manages the game's high-level state by controlling which scene
// is active. It ensures only one scene's Update and Draw methods are called
// at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent ticks.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// CurrentScene 返回当前活动的场景，无活动场景时返回 nil
func (sm *SceneManager) CurrentScene() Scene {
	return sm.currentScene
}

// LaunchGame 通过工厂函数创建并切换到指定游戏的场景
func (sm *SceneManager) LaunchGame(gameID string) {
	log.Printf("[SceneManager] Launching game: %s", gameID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] Error: scene factory not set")
		return
	}

	newScene := sm.sceneFactory(gameID)
	if newScene != nil {
		sm.SwitchTo(newScene)
	} else {
		log.Printf("[SceneManager] Error: failed to create scene for game: %s", gameID)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene onto the logical surface.
func (sm *SceneManager) Draw(surface *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(surface)
	}
}
