package model

// Package model defines the swipe domain types shared by the coordinator and
// the UI bindings: row states and their transitions, orientations, actions
// with their fulfillment outcome, expansion styles and strip options, and the
// small geometry vocabulary used for offset math.
