package entity

// World 管理一局游戏内的全部实体
//
// 实体按生成顺序保存在单一切片中，遍历顺序即生成顺序。
// 销毁采用标记-清扫模式：Destroy 只清除 Alive 标志，
// 每 tick 结束由 Sweep 统一移除，移除后剩余实体保持原有顺序。
type World struct {
	nextID   uint64
	entities []*Entity
}

// NewWorld 创建空的实体容器
func NewWorld() *World {
	return &World{
		nextID:   1, // ID从1开始,0保留为无效ID
		entities: make([]*Entity, 0, 64),
	}
}

// Spawn 创建指定类型的新实体并加入容器
// 返回的实体可直接修改字段完成初始化
func (w *World) Spawn(kind Kind) *Entity {
	e := &Entity{
		ID:    w.nextID,
		Kind:  kind,
		Alive: true,
		TTL:   -1,
	}
	w.nextID++
	w.entities = append(w.entities, e)
	return e
}

// Destroy 标记实体待删除（不立即删除）
func (w *World) Destroy(e *Entity) {
	e.Alive = false
}

// Sweep 移除所有标记删除的实体，保持剩余实体的生成顺序
func (w *World) Sweep() {
	kept := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			kept = append(kept, e)
		}
	}
	// 清掉尾部引用，避免悬挂
	for i := len(kept); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = kept
}

// Entities 返回全部存活与待删除实体（生成顺序）
// 调用方不得修改切片本身
func (w *World) Entities() []*Entity {
	return w.entities
}

// Count 统计指定类型的存活实体数量
func (w *World) Count(kind Kind) int {
	n := 0
	for _, e := range w.entities {
		if e.Alive && e.Kind == kind {
			n++
		}
	}
	return n
}

// Player 返回玩家实体，不存在时返回 nil
// Playing 状态下的不变量：恰好存在一个玩家实体
func (w *World) Player() *Entity {
	for _, e := range w.entities {
		if e.Alive && e.Kind == KindPlayer {
			return e
		}
	}
	return nil
}

// Reset 清空容器并重置ID计数，用于重新开始一局
func (w *World) Reset() {
	w.nextID = 1
	w.entities = w.entities[:0]
}

// ApplyBounds 对所有存活实体应用边界策略
//
// Wrap 实体跨过逻辑边界时位置平移恰好一个宽度/高度，速度不变；
// 非 Wrap 实体的包围盒完全离开 [−margin, size+margin] 范围后被标记删除。
func (w *World) ApplyBounds(width, height, margin float64) {
	for _, e := range w.entities {
		if !e.Alive {
			continue
		}
		if e.Wrap {
			wrapEntity(e, width, height)
			continue
		}
		if exited(e, width, height, margin) {
			w.Destroy(e)
		}
	}
}

func wrapEntity(e *Entity, width, height float64) {
	if e.Pos.X < 0 {
		e.Pos.X += width
	} else if e.Pos.X >= width {
		e.Pos.X -= width
	}
	if e.Pos.Y < 0 {
		e.Pos.Y += height
	} else if e.Pos.Y >= height {
		e.Pos.Y -= height
	}
}

// exited 判断实体包围盒是否完全离开扩展后的显示范围
func exited(e *Entity, width, height, margin float64) bool {
	return e.Pos.X+e.Size < -margin ||
		e.Pos.X-e.Size > width+margin ||
		e.Pos.Y+e.Size < -margin ||
		e.Pos.Y-e.Size > height+margin
}
